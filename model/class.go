/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"iter"
	"maps"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/storage"
)

const (
	// RootName is the type name of the root class every declaration extends.
	RootName = "Model"

	// TypeNameKey is stamped into the props and statics of every declared class.
	TypeNameKey = "typeName"

	// DefaultIDAttribute is the identifier attribute name used when no
	// schema entry is flagged as identifying.
	DefaultIDAttribute = "id"
)

// AttributeDef is one named entry of a declaration's attribute list.
type AttributeDef struct {
	Name string
	Decl attribute.Declaration
}

// Attr is shorthand for an AttributeDef.
func Attr(name string, decl attribute.Declaration) AttributeDef {
	return AttributeDef{Name: name, Decl: decl}
}

// Properties is the property bag of a declaration.
type Properties struct {
	// Attributes are merged over the base schema; order is kept.
	Attributes []AttributeDef
	// Storage is a ready *storage.Class or storage.Overrides for the base storage.
	Storage storage.Declaration
	// Props are instance-level values merged over the base props.
	Props map[string]any
	// Init runs after the instance joined the instance list, after the
	// Init hooks of its ancestors.
	Init func(*Instance) error
	// Destruct runs after the instance left the instance list, before the
	// Destruct hooks of its ancestors.
	Destruct func(*Instance)
}

// Statics are class-level values merged over the base statics.
type Statics map[string]any

// Schema is the resolved, ordered attribute schema of a class.
type Schema struct {
	names   []string
	classes map[string]*attribute.Class
}

func newSchema() *Schema {
	return &Schema{classes: make(map[string]*attribute.Class)}
}

func (s *Schema) put(name string, c *attribute.Class) {
	if _, ok := s.classes[name]; !ok {
		s.names = append(s.names, name)
	}
	s.classes[name] = c
}

// Get returns the attribute class for name.
func (s *Schema) Get(name string) (*attribute.Class, bool) {
	c, ok := s.classes[name]
	return c, ok
}

// Names returns the attribute names in declaration order.
func (s *Schema) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of attributes.
func (s *Schema) Len() int { return len(s.names) }

// All iterates the schema in declaration order.
func (s *Schema) All() iter.Seq2[string, *attribute.Class] {
	return func(yield func(string, *attribute.Class) bool) {
		for _, name := range s.names {
			if !yield(name, s.classes[name]) {
				return
			}
		}
	}
}

// Class is a resolved model declaration: an attribute schema, a storage
// descriptor and a pointer to the class it extends.
type Class struct {
	name     string
	parent   *Class
	schema   *Schema
	storage  *storage.Class
	props    map[string]any
	statics  map[string]any
	init     func(*Instance) error
	destruct func(*Instance)
	reg      *Registry
}

// TypeName returns the declared type name.
func (c *Class) TypeName() string { return c.name }

// Parent returns the class c extends, nil for the root class.
func (c *Class) Parent() *Class { return c.parent }

// Schema returns the resolved attribute schema.
func (c *Class) Schema() *Schema { return c.schema }

// Storage returns the storage descriptor of the class.
func (c *Class) Storage() *storage.Class { return c.storage }

// Registry returns the registry the class was declared in.
func (c *Class) Registry() *Registry { return c.reg }

// Prop returns an instance-level property.
func (c *Class) Prop(key string) (any, bool) {
	v, ok := c.props[key]
	return v, ok
}

// Static returns a class-level property.
func (c *Class) Static(key string) (any, bool) {
	v, ok := c.statics[key]
	return v, ok
}

// Statics returns a copy of the class-level properties.
func (c *Class) Statics() Statics { return maps.Clone(c.statics) }

// Is reports whether c is ancestor or extends it.
func (c *Class) Is(ancestor *Class) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Accepts reports whether v is an instance of c. It lets relational
// attributes bound to c validate their values.
func (c *Class) Accepts(v any) bool {
	inst, ok := v.(*Instance)
	return ok && inst != nil && inst.Is(c)
}

// IDAttributeName returns the name of the first schema attribute flagged
// as identifying, or DefaultIDAttribute. It is recomputed on every call.
func (c *Class) IDAttributeName() string {
	for name, ac := range c.schema.All() {
		if ac.IsID() {
			return name
		}
	}
	return DefaultIDAttribute
}

// GetOne returns the first live instance of c in instance list order, or a
// NotFoundError when there is none.
func (c *Class) GetOne() (*Instance, error) {
	return c.reg.findOne(c.name, func(inst *Instance) bool {
		return inst.Is(c)
	})
}

// GetOneByCID returns the instance with the given cid.
//
// The class filter is not applied: a cid belonging to an instance of an
// unrelated type still returns that instance.
func (c *Class) GetOneByCID(cid string) (*Instance, error) {
	return c.reg.GetOneByCID(cid)
}

// Instances returns the live instances of c in instance list order.
func (c *Class) Instances() ([]*Instance, error) {
	all, err := c.reg.GetList()
	if err != nil {
		return nil, err
	}
	var res []*Instance
	for _, inst := range all {
		if inst.Is(c) {
			res = append(res, inst)
		}
	}
	return res, nil
}

// GetAny returns the first live instance of c, creating one with no initial
// data when there is none.
func (c *Class) GetAny() (*Instance, error) {
	return c.reg.getOrCreate(c, func(inst *Instance) bool {
		return inst.Is(c)
	}, nil)
}

// GetAnyByID returns the live instance of c whose identifier equals id,
// creating one seeded with {IDAttributeName(): id} on a miss. Instances of
// other types sharing the identifier never match.
func (c *Class) GetAnyByID(id any) (*Instance, error) {
	return c.reg.getOrCreate(c, func(inst *Instance) bool {
		return inst.Is(c) && inst.identifiedBy(id)
	}, map[string]any{c.IDAttributeName(): id})
}

// Create always constructs a new instance of c.
func (c *Class) Create(data map[string]any) (*Instance, error) {
	return c.reg.create(c, data)
}

// lineage returns the class chain from the root down to c.
func (c *Class) lineage() []*Class {
	var chain []*Class
	for cur := c; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
