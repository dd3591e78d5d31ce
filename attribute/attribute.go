/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"maps"
	"reflect"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/go-cmp/cmp"
)

// Declaration is one entry of a model's attribute schema as written by the
// caller: either a ready *Class, used as is, or a Decl descriptor resolved
// against the built-in kinds and the type table.
type Declaration interface {
	attributeDeclaration()
}

// Decl describes an attribute by naming its type.
type Decl struct {
	// Type names a built-in kind, a relational kind or a registered custom type.
	Type string
	// ModelType names the declared model a relational attribute holds.
	ModelType string
	// Default is used when construction data leaves the attribute unset.
	Default any
	// Options carries any other field of the declaration.
	Options map[string]any
}

func (Decl) attributeDeclaration() {}

// ModelType is the view a relational attribute has of the model class it
// is bound to.
type ModelType interface {
	TypeName() string
	// Accepts reports whether v is an instance of the model type.
	Accepts(v any) bool
}

// NormalizeFunc validates v for c and returns the value to hold.
type NormalizeFunc func(c *Class, v any) (any, error)

// Class holds and validates the values of one attribute. Classes form a
// single inheritance chain; every derivation returns a new Class.
type Class struct {
	name      string
	kind      string
	parent    *Class
	isID      bool
	def       any
	options   map[string]any
	modelType ModelType
	normalize NormalizeFunc
}

func (*Class) attributeDeclaration() {}

// ClassOption configures a root class built with New.
type ClassOption func(*Class)

// Identifying marks the class as the identifying attribute type.
func Identifying() ClassOption {
	return func(c *Class) {
		c.isID = true
	}
}

// WithDefault sets the value used for unset attributes.
func WithDefault(v any) ClassOption {
	return func(c *Class) {
		c.def = v
	}
}

// New creates a root attribute class of the given kind.
func New(kind string, normalize NormalizeFunc, opts ...ClassOption) *Class {
	c := &Class{
		name:      kind,
		kind:      kind,
		options:   map[string]any{},
		normalize: normalize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Class) derive() *Class {
	return &Class{
		name:      c.name,
		kind:      c.kind,
		parent:    c,
		isID:      c.isID,
		def:       c.def,
		options:   maps.Clone(c.options),
		modelType: c.modelType,
		normalize: c.normalize,
	}
}

// Extend returns a class deriving from c with the declaration's default and
// options applied on top. Type and ModelType are resolution inputs and are
// not copied.
func (c *Class) Extend(d Decl) *Class {
	child := c.derive()
	if d.Default != nil {
		child.def = d.Default
	}
	maps.Copy(child.options, d.Options)
	return child
}

// Bind returns a class deriving from c that holds instances of mt.
func (c *Class) Bind(mt ModelType) *Class {
	child := c.derive()
	child.modelType = mt
	return child
}

// Named returns a class deriving from c registered under name.
func (c *Class) Named(name string) *Class {
	child := c.derive()
	child.name = name
	return child
}

// TypeName returns the name the class is registered under.
func (c *Class) TypeName() string { return c.name }

// Kind returns the built-in kind at the root of the chain.
func (c *Class) Kind() string { return c.kind }

// Parent returns the class c derives from.
func (c *Class) Parent() *Class { return c.parent }

// IsID reports whether the class is flagged as the identifying type.
func (c *Class) IsID() bool { return c.isID }

// Relational reports whether values are model instances.
func (c *Class) Relational() bool { return IsRelational(c.kind) }

// ModelType returns the bound model type of a relational class.
func (c *Class) ModelType() ModelType { return c.modelType }

// Default returns the value used for unset attributes.
func (c *Class) Default() any { return c.def }

// Option returns a declaration option.
func (c *Class) Option(key string) (any, bool) {
	v, ok := c.options[key]
	return v, ok
}

// Is reports whether c is ancestor or derives from it.
func (c *Class) Is(ancestor *Class) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Normalize validates v and returns the value an instance should hold.
// A nil value resolves to the class default.
func (c *Class) Normalize(v any) (any, error) {
	if v == nil {
		if c.def == nil {
			return nil, nil
		}
		v = c.def
	}
	if c.normalize == nil {
		return v, nil
	}
	return c.normalize(c, v)
}

var valueOptions = []cmp.Option{
	cmp.Comparer(func(a, b strfmt.DateTime) bool {
		return time.Time(a).Equal(time.Time(b))
	}),
	// caller structs may carry unexported fields
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// ValueEqual reports whether a and b are deeply equal. Unexported struct
// fields take part in the comparison.
func ValueEqual(a, b any) bool {
	return cmp.Equal(a, b, valueOptions...)
}

// Equal reports whether held equals v once v is normalized by c.
// Relational values compare by instance identity.
func (c *Class) Equal(held, v any) bool {
	nv, err := c.Normalize(v)
	if err != nil {
		return false
	}
	if c.Relational() {
		return sameInstances(held, nv)
	}
	return ValueEqual(held, nv)
}

func sameInstances(a, b any) bool {
	la, aList := a.([]any)
	lb, bList := b.([]any)
	if aList != bList {
		return false
	}
	if !aList {
		return a == b
	}
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}
