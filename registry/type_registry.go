/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"
)

// Block is anything that can be stored in the type table under its own name.
type Block interface {
	TypeName() string
}

// Table holds the mapping from a type name (like "Person" or "Slug") to its
// resolved block. Redeclaring a name replaces the previous entry.
type Table struct {
	mu     sync.RWMutex
	blocks map[string]Block
}

// NewTable creates an empty type table.
func NewTable() *Table {
	return &Table{
		blocks: make(map[string]Block),
	}
}

// Set stores a block under its type name and returns the block it replaced, if any.
func (t *Table) Set(b Block) (Block, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name := b.TypeName()
	prev, replaced := t.blocks[name]
	t.blocks[name] = b
	return prev, replaced
}

// Get returns the block registered under name.
func (t *Table) Get(name string) (Block, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b, ok := t.blocks[name]
	return b, ok
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Names returns all registered type names in lexical order.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.blocks))
	for name := range t.blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered types.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.blocks)
}

// Lookup returns the block registered under name when it has the concrete type B.
func Lookup[B Block](t *Table, name string) (B, bool) {
	var zero B
	b, ok := t.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := b.(B)
	if !ok {
		return zero, false
	}
	return typed, true
}
