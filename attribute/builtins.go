/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/declmodel/errors"
)

// Built-in kinds.
const (
	KindString     = "String"
	KindNumber     = "Number"
	KindBoolean    = "Boolean"
	KindID         = "Id"
	KindDateTime   = "DateTime"
	KindUUID       = "UUID"
	KindEmail      = "Email"
	KindObject     = "Object"
	KindModel      = "Model"
	KindModelsList = "ModelsList"
	KindCollection = "Collection"
)

// IDKind is the reserved name of the identifying attribute type.
const IDKind = KindID

// IsRelational reports whether kind holds instances of another model type.
func IsRelational(kind string) bool {
	switch kind {
	case KindModel, KindModelsList, KindCollection:
		return true
	}
	return false
}

var (
	String     = New(KindString, normalizeString, WithDefault(""))
	Number     = New(KindNumber, normalizeNumber)
	Boolean    = New(KindBoolean, normalizeBoolean, WithDefault(false))
	ID         = New(KindID, normalizeID, Identifying())
	DateTime   = New(KindDateTime, normalizeDateTime)
	UUID       = New(KindUUID, normalizeUUID)
	Email      = New(KindEmail, normalizeEmail)
	Object     = New(KindObject, normalizeObject)
	Model      = New(KindModel, normalizeModel)
	ModelsList = New(KindModelsList, normalizeModels)
	Collection = New(KindCollection, normalizeModels)
)

// Builtins returns a fresh lookup table of the built-in classes keyed by kind.
// Hosts may add their own entries before handing it to a model registry.
func Builtins() map[string]*Class {
	return map[string]*Class{
		KindString:     String,
		KindNumber:     Number,
		KindBoolean:    Boolean,
		KindID:         ID,
		KindDateTime:   DateTime,
		KindUUID:       UUID,
		KindEmail:      Email,
		KindObject:     Object,
		KindModel:      Model,
		KindModelsList: ModelsList,
		KindCollection: Collection,
	}
}

func invalid(c *Class, v any, reason string) error {
	return errors.NewValidationError(c.TypeName(), fmt.Sprintf("%v (%T) %s", v, v, reason))
}

func normalizeString(c *Class, v any) (any, error) {
	switch tv := v.(type) {
	case string:
		return tv, nil
	case fmt.Stringer:
		return tv.String(), nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return nil, invalid(c, v, "is not a string")
}

func normalizeNumber(c *Class, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return nil, invalid(c, v, "is not a number")
}

func normalizeBoolean(c *Class, v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return nil, invalid(c, v, "is not a boolean")
}

// normalizeID keeps identifiers comparable across integer widths and named
// string types.
func normalizeID(c *Class, v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			// does not fit int64 and must stay distinct from negative ids
			return u, nil
		}
		return int64(u), nil
	}
	return nil, invalid(c, v, "is not a valid identifier")
}

func normalizeDateTime(c *Class, v any) (any, error) {
	switch tv := v.(type) {
	case strfmt.DateTime:
		return tv, nil
	case time.Time:
		return strfmt.DateTime(tv), nil
	case string:
		dt, err := strfmt.ParseDateTime(tv)
		if err != nil {
			return nil, invalid(c, v, "is not a date-time")
		}
		return dt, nil
	}
	return nil, invalid(c, v, "is not a date-time")
}

func normalizeUUID(c *Class, v any) (any, error) {
	var s string
	switch tv := v.(type) {
	case strfmt.UUID:
		s = tv.String()
	case string:
		s = tv
	default:
		return nil, invalid(c, v, "is not a uuid")
	}
	if !strfmt.IsUUID(s) {
		return nil, invalid(c, v, "is not a uuid")
	}
	return strfmt.UUID(s), nil
}

func normalizeEmail(c *Class, v any) (any, error) {
	var s string
	switch tv := v.(type) {
	case strfmt.Email:
		s = tv.String()
	case string:
		s = tv
	default:
		return nil, invalid(c, v, "is not an email")
	}
	if !strfmt.IsEmail(s) {
		return nil, invalid(c, v, "is not an email")
	}
	return strfmt.Email(s), nil
}

func normalizeObject(c *Class, v any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, invalid(c, v, "is not an object")
}

func normalizeModel(c *Class, v any) (any, error) {
	mt := c.ModelType()
	if mt == nil {
		return nil, invalid(c, v, "cannot be held by an unbound model attribute")
	}
	if !mt.Accepts(v) {
		return nil, invalid(c, v, "is not a "+mt.TypeName())
	}
	return v, nil
}

func normalizeModels(c *Class, v any) (any, error) {
	mt := c.ModelType()
	if mt == nil {
		return nil, invalid(c, v, "cannot be held by an unbound list attribute")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, invalid(c, v, "is not a list")
	}

	items := make([]any, rv.Len())
	for i := range items {
		item := rv.Index(i).Interface()
		if !mt.Accepts(item) {
			return nil, invalid(c, item, fmt.Sprintf("at index %d is not a %s", i, mt.TypeName()))
		}
		items[i] = item
	}
	return items, nil
}
