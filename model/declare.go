/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"fmt"
	"maps"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/errors"
	"github.com/suparena/declmodel/registry"
	"github.com/suparena/declmodel/storage"
)

// Declare resolves a declaration with no explicit base type and registers
// the class under name. If name is already declared, the existing class is
// extended, otherwise the root class is.
func (r *Registry) Declare(name string, props Properties, statics ...Statics) (*Class, error) {
	return r.declare(name, "", props, mergeStatics(statics))
}

// Extend resolves a declaration extending base and registers the class
// under name. An existing declaration of name takes precedence over base.
func (r *Registry) Extend(name, base string, props Properties, statics ...Statics) (*Class, error) {
	return r.declare(name, base, props, mergeStatics(statics))
}

// DeclareAttributeType registers a custom attribute type under name, usable
// as the Type of later attribute declarations.
func (r *Registry) DeclareAttributeType(name string, decl attribute.Declaration) (*attribute.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	resolved, err := r.resolveAttribute(name, name, decl)
	if err != nil {
		return nil, err
	}

	ac := resolved.Named(name)
	_, replaced := r.types.Set(ac)
	r.logger.Debug("attribute type declared", "type", name, "kind", ac.Kind(), "redeclared", replaced)
	return ac, nil
}

func (r *Registry) declare(name, base string, props Properties, statics Statics) (*Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	baseClass, err := r.resolveBase(name, base)
	if err != nil {
		return nil, err
	}

	schema, err := r.resolveSchema(name, baseClass.schema, props.Attributes)
	if err != nil {
		return nil, err
	}

	c := &Class{
		name:     name,
		parent:   baseClass,
		schema:   schema,
		storage:  resolveStorage(baseClass.storage, props.Storage),
		props:    mergeProps(baseClass.props, props.Props),
		statics:  mergeProps(baseClass.statics, statics),
		init:     props.Init,
		destruct: props.Destruct,
		reg:      r,
	}
	c.props[TypeNameKey] = name
	c.statics[TypeNameKey] = name

	_, replaced := r.types.Set(c)
	r.logger.Debug("model declared",
		"type", name,
		"base", baseClass.name,
		"attributes", schema.Len(),
		"storage", c.storage.Name(),
		"redeclared", replaced)
	return c, nil
}

func (r *Registry) resolveBase(name, base string) (*Class, error) {
	if b, ok := r.types.Get(name); ok {
		existing, ok := b.(*Class)
		if !ok {
			return nil, errors.NewUnknownBaseTypeError(name, name)
		}
		return existing, nil
	}
	if base == "" {
		return r.root, nil
	}
	c, ok := registry.Lookup[*Class](r.types, base)
	if !ok {
		return nil, errors.NewUnknownBaseTypeError(name, base)
	}
	return c, nil
}

func resolveStorage(base *storage.Class, decl storage.Declaration) *storage.Class {
	if base == nil {
		base = storage.Default()
	}
	switch d := decl.(type) {
	case *storage.Class:
		if d != nil {
			return d
		}
	case storage.Overrides:
		return base.Extend(d)
	case *storage.Overrides:
		if d != nil {
			return base.Extend(*d)
		}
	}
	return base
}

// resolveSchema merges the declared attributes over the base schema and
// resolves every entry. A redeclared name keeps its base position and is
// replaced as a whole.
func (r *Registry) resolveSchema(typeName string, base *Schema, defs []AttributeDef) (*Schema, error) {
	merged := make(map[string]attribute.Declaration, base.Len()+len(defs))
	order := base.Names()
	for name, ac := range base.All() {
		merged[name] = ac
	}
	for _, def := range defs {
		if _, ok := merged[def.Name]; !ok {
			order = append(order, def.Name)
		}
		merged[def.Name] = def.Decl
	}

	schema := newSchema()
	for _, name := range order {
		ac, err := r.resolveAttribute(typeName, name, merged[name])
		if err != nil {
			return nil, err
		}
		schema.put(name, ac)
	}
	return schema, nil
}

// resolveAttribute turns one declaration into an attribute class: a class is
// used as is, a relational kind is bound to its model type, then built-in
// kinds and custom attribute types from the type table are extended.
func (r *Registry) resolveAttribute(typeName, attrName string, decl attribute.Declaration) (*attribute.Class, error) {
	var d attribute.Decl
	switch v := decl.(type) {
	case *attribute.Class:
		if v != nil {
			return v, nil
		}
		return nil, errors.NewUnknownAttributeTypeError(typeName, attrName, "<nil>")
	case attribute.Decl:
		d = v
	case *attribute.Decl:
		if v == nil {
			return nil, errors.NewUnknownAttributeTypeError(typeName, attrName, "<nil>")
		}
		d = *v
	default:
		return nil, errors.NewUnknownAttributeTypeError(typeName, attrName, fmt.Sprintf("%T", decl))
	}

	if attribute.IsRelational(d.Type) {
		mt, ok := registry.Lookup[*Class](r.types, d.ModelType)
		if !ok {
			return nil, errors.NewUnknownAttributeModelTypeError(typeName, attrName, d.ModelType)
		}
		generic, ok := r.attrTypes[d.Type]
		if !ok {
			return nil, errors.NewUnknownAttributeTypeError(typeName, attrName, d.Type)
		}
		return generic.Extend(d).Bind(mt), nil
	}

	if builtin, ok := r.attrTypes[d.Type]; ok {
		return builtin.Extend(d), nil
	}
	if custom, ok := registry.Lookup[*attribute.Class](r.types, d.Type); ok {
		return custom.Extend(d), nil
	}
	return nil, errors.NewUnknownAttributeTypeError(typeName, attrName, d.Type)
}

func mergeProps(base, overrides map[string]any) map[string]any {
	res := maps.Clone(base)
	if res == nil {
		res = make(map[string]any, len(overrides))
	}
	maps.Copy(res, overrides)
	return res
}

func mergeStatics(statics []Statics) Statics {
	res := Statics{}
	for _, s := range statics {
		maps.Copy(res, s)
	}
	return res
}
