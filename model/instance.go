/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"fmt"
	"maps"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/declmodel/attribute"
)

// Instance is one live object of a declared class.
type Instance struct {
	cid   string
	class *Class

	mu     sync.RWMutex
	values map[string]any
}

// CID returns the ephemeral client identity assigned at construction.
func (m *Instance) CID() string { return m.cid }

// Class returns the class the instance was constructed from.
func (m *Instance) Class() *Class { return m.class }

// TypeName returns the type name of the instance's class.
func (m *Instance) TypeName() string { return m.class.name }

// Is reports whether the instance is a c.
func (m *Instance) Is(c *Class) bool { return m.class.Is(c) }

// Prop returns an instance-level property of the class.
func (m *Instance) Prop(key string) (any, bool) { return m.class.Prop(key) }

// Get returns the value held for an attribute.
func (m *Instance) Get(name string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[name]
	return v, ok
}

// Set validates v through the attribute's class and stores it. Names that
// are not in the schema are stored verbatim.
func (m *Instance) Set(name string, v any) error {
	nv, err := m.normalize(name, v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store(name, nv)
	return nil
}

// Data returns a copy of all held values.
func (m *Instance) Data() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.values)
}

// IDAttribute returns the value of the identifying attribute.
func (m *Instance) IDAttribute() (any, bool) {
	return m.Get(m.class.IDAttributeName())
}

// StorageKeys expands the class storage index map against the instance data.
func (m *Instance) StorageKeys() (map[string]types.AttributeValue, error) {
	return m.class.storage.Keys(m.Data())
}

// StorageItem marshals the instance data into a storage item stamped with
// the storage entity type.
func (m *Instance) StorageItem() (map[string]types.AttributeValue, error) {
	return m.class.storage.Item(m.Data())
}

// Destruct removes the instance from the instance list and runs the class
// Destruct hooks. Destructing an instance that is not listed is a no-op and
// returns false. A registry without an instance list returns
// NotImplementedError.
func (m *Instance) Destruct() (bool, error) {
	return m.class.reg.destruct(m)
}

func (m *Instance) load(data map[string]any) error {
	for name, ac := range m.class.schema.All() {
		v, err := ac.Normalize(data[name])
		if err != nil {
			return fmt.Errorf("%s.%s: %w", m.class.name, name, err)
		}
		m.store(name, v)
	}
	for name, v := range data {
		if _, declared := m.class.schema.Get(name); !declared {
			m.store(name, v)
		}
	}
	return nil
}

func (m *Instance) normalize(name string, v any) (any, error) {
	ac, ok := m.class.schema.Get(name)
	if !ok {
		return v, nil
	}
	nv, err := ac.Normalize(v)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", m.class.name, name, err)
	}
	return nv, nil
}

func (m *Instance) store(name string, v any) {
	if v == nil {
		delete(m.values, name)
		return
	}
	m.values[name] = v
}

// identifiedBy reports whether the identifier value equals id.
func (m *Instance) identifiedBy(id any) bool {
	name := m.class.IDAttributeName()
	held, ok := m.Get(name)
	if !ok {
		return false
	}
	if ac, declared := m.class.schema.Get(name); declared {
		return ac.Equal(held, id)
	}
	return attribute.ValueEqual(held, id)
}
