/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"sync"

	"github.com/suparena/declmodel/errors"
)

// InstanceList is the ordered backing of all live instances. The registry
// only does bookkeeping through it: membership never controls lifecycle.
type InstanceList interface {
	// Append adds inst at the end. An instance is listed at most once.
	Append(inst *Instance) error
	// Remove drops inst, reporting whether it was listed.
	Remove(inst *Instance) bool
	// Find returns the first instance in list order matching the predicate.
	Find(match func(*Instance) bool) (*Instance, bool)
	// ByCID returns the instance with the given cid.
	ByCID(cid string) (*Instance, bool)
	// Snapshot returns the instances in list order.
	Snapshot() []*Instance
	// Len returns the number of listed instances.
	Len() int
}

// MemoryList is the in-memory InstanceList. Lookups by predicate scan the
// list in insertion order; cid and exact type lookups go through indexes.
type MemoryList struct {
	mu     sync.RWMutex
	items  []*Instance
	byCID  map[string]*Instance
	byType map[string]map[string]struct{}
}

// NewMemoryList creates an empty MemoryList.
func NewMemoryList() *MemoryList {
	return &MemoryList{
		byCID:  make(map[string]*Instance),
		byType: make(map[string]map[string]struct{}),
	}
}

// Append adds inst at the end of the list.
func (l *MemoryList) Append(inst *Instance) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byCID[inst.cid]; exists {
		return errors.NewAlreadyExistsError(inst.TypeName(), inst.cid)
	}

	l.items = append(l.items, inst)
	l.byCID[inst.cid] = inst

	typeName := inst.TypeName()
	if l.byType[typeName] == nil {
		l.byType[typeName] = make(map[string]struct{})
	}
	l.byType[typeName][inst.cid] = struct{}{}
	return nil
}

// Remove drops inst from the list. Removing an unlisted instance is a no-op.
func (l *MemoryList) Remove(inst *Instance) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.byCID[inst.cid] != inst {
		return false
	}

	for i, item := range l.items {
		if item == inst {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	delete(l.byCID, inst.cid)

	typeName := inst.TypeName()
	delete(l.byType[typeName], inst.cid)
	if len(l.byType[typeName]) == 0 {
		delete(l.byType, typeName)
	}
	return true
}

// Find returns the first instance matching the predicate.
func (l *MemoryList) Find(match func(*Instance) bool) (*Instance, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, inst := range l.items {
		if match(inst) {
			return inst, true
		}
	}
	return nil, false
}

// ByCID returns the instance with the given cid.
func (l *MemoryList) ByCID(cid string) (*Instance, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	inst, ok := l.byCID[cid]
	return inst, ok
}

// Snapshot returns a copy of the list.
func (l *MemoryList) Snapshot() []*Instance {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]*Instance(nil), l.items...)
}

// Len returns the number of listed instances.
func (l *MemoryList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// CountOfType returns the number of listed instances whose class was
// declared under typeName. Subtypes are not counted.
func (l *MemoryList) CountOfType(typeName string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byType[typeName])
}
