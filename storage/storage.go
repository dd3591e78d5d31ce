/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storage

import (
	"maps"
)

// DefaultName is the name of the storage base every model falls back to.
const DefaultName = "Storage"

// Declaration is what a model declaration may carry as its storage: either a
// ready storage *Class, used verbatim, or Overrides merged onto the base
// model's storage class.
type Declaration interface {
	storageDeclaration()
}

// Overrides is the non-class form of a storage declaration.
type Overrides struct {
	// Name names the derived storage class. Empty keeps the base name.
	Name string
	// Table is the backing table name.
	Table string
	// EntityType is injected into items built for this storage.
	EntityType string
	// IndexMap maps key attributes to templates such as "USER#{id}".
	IndexMap map[string]string
	// Options carries backend specific settings.
	Options map[string]any
}

func (Overrides) storageDeclaration() {}

// Class is a storage descriptor shared by the instances of a model class.
// A Class is immutable once built; Extend returns a new one.
type Class struct {
	name       string
	parent     *Class
	table      string
	entityType string
	indexMap   map[string]string
	options    map[string]any
}

func (*Class) storageDeclaration() {}

var defaultClass = &Class{
	name:     DefaultName,
	indexMap: map[string]string{},
	options:  map[string]any{},
}

// Default returns the storage base used when a model hierarchy declares none.
func Default() *Class {
	return defaultClass
}

// New builds a standalone storage class deriving from the default storage.
func New(o Overrides) *Class {
	return Default().Extend(o)
}

// Extend returns a new Class deriving from c with the overrides applied.
// Index map entries and options are merged key-wise, scalars replace the
// parent values when non-empty.
func (c *Class) Extend(o Overrides) *Class {
	child := &Class{
		name:       c.name,
		parent:     c,
		table:      c.table,
		entityType: c.entityType,
		indexMap:   maps.Clone(c.indexMap),
		options:    maps.Clone(c.options),
	}
	if child.indexMap == nil {
		child.indexMap = map[string]string{}
	}
	if child.options == nil {
		child.options = map[string]any{}
	}
	if o.Name != "" {
		child.name = o.Name
	}
	if o.Table != "" {
		child.table = o.Table
	}
	if o.EntityType != "" {
		child.entityType = o.EntityType
	}
	maps.Copy(child.indexMap, o.IndexMap)
	maps.Copy(child.options, o.Options)
	return child
}

// Name returns the storage class name.
func (c *Class) Name() string { return c.name }

// Parent returns the storage class c was extended from, nil for the default.
func (c *Class) Parent() *Class { return c.parent }

// Table returns the backing table name.
func (c *Class) Table() string { return c.table }

// EntityType returns the entity type injected into built items.
func (c *Class) EntityType() string { return c.entityType }

// IndexMap returns a copy of the key templates.
func (c *Class) IndexMap() map[string]string { return maps.Clone(c.indexMap) }

// Option returns a backend option.
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
