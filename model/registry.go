/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/errors"
	"github.com/suparena/declmodel/registry"
	"github.com/suparena/declmodel/storage"
)

// Registry resolves declarations into classes and keeps the list of live
// instances of those classes. Each Registry is an isolated context: tests
// build one per case instead of sharing process state.
type Registry struct {
	// mu serializes declarations and get-or-create so a lookup miss and the
	// following append happen as one step.
	mu sync.Mutex

	types     *registry.Table
	attrTypes map[string]*attribute.Class
	list      InstanceList
	identity  func() string
	logger    *slog.Logger
	root      *Class
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithIdentity sets the generator of instance cids. It must return a fresh
// value on every call.
func WithIdentity(identity func() string) Option {
	return func(r *Registry) {
		r.identity = identity
	}
}

// WithTypeTable shares a host-owned type table.
func WithTypeTable(table *registry.Table) Option {
	return func(r *Registry) {
		r.types = table
	}
}

// WithInstanceList sets the instance list backing. A nil list leaves the
// list abstract: GetList and every construction fail with NotImplementedError.
func WithInstanceList(list InstanceList) Option {
	return func(r *Registry) {
		r.list = list
	}
}

// WithAttributeTypes replaces the built-in attribute kind lookup table.
func WithAttributeTypes(types map[string]*attribute.Class) Option {
	return func(r *Registry) {
		r.attrTypes = types
	}
}

// New creates a Registry with an empty type table, the built-in attribute
// kinds, an in-memory instance list and uuid cids.
func New(opts ...Option) *Registry {
	r := &Registry{
		types:     registry.NewTable(),
		attrTypes: attribute.Builtins(),
		list:      NewMemoryList(),
		identity:  uuid.NewString,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.root = &Class{
		name:    RootName,
		schema:  newSchema(),
		storage: storage.Default(),
		props:   map[string]any{TypeNameKey: RootName},
		statics: map[string]any{TypeNameKey: RootName},
		reg:     r,
	}
	return r
}

// Root returns the class every declaration ultimately extends.
func (r *Registry) Root() *Class { return r.root }

// Types returns the type table.
func (r *Registry) Types() *registry.Table { return r.types }

// Class returns the model class declared under name.
func (r *Registry) Class(name string) (*Class, error) {
	c, ok := registry.Lookup[*Class](r.types, name)
	if !ok {
		return nil, errors.NewNotFoundError("model type", name)
	}
	return c, nil
}

// AttributeType returns the custom attribute class declared under name.
func (r *Registry) AttributeType(name string) (*attribute.Class, error) {
	c, ok := registry.Lookup[*attribute.Class](r.types, name)
	if !ok {
		return nil, errors.NewNotFoundError("attribute type", name)
	}
	return c, nil
}

// GetOne returns the first live instance of any type. It returns a
// NotFoundError when the list is empty.
func (r *Registry) GetOne() (*Instance, error) {
	return r.findOne(RootName, func(*Instance) bool { return true })
}

// GetOneByCID returns the live instance with the given cid.
func (r *Registry) GetOneByCID(cid string) (*Instance, error) {
	list, err := r.instanceList()
	if err != nil {
		return nil, err
	}
	inst, ok := list.ByCID(cid)
	if !ok {
		return nil, errors.NewNotFoundError("model instance", cid)
	}
	return inst, nil
}

// GetList returns the live instances in insertion order.
func (r *Registry) GetList() ([]*Instance, error) {
	list, err := r.instanceList()
	if err != nil {
		return nil, err
	}
	return list.Snapshot(), nil
}

// CountByType returns the number of live instances whose class was declared
// under typeName, subtypes excluded.
func (r *Registry) CountByType(typeName string) (int, error) {
	list, err := r.instanceList()
	if err != nil {
		return 0, err
	}
	if counter, ok := list.(interface{ CountOfType(string) int }); ok {
		return counter.CountOfType(typeName), nil
	}

	n := 0
	for _, inst := range list.Snapshot() {
		if inst.TypeName() == typeName {
			n++
		}
	}
	return n, nil
}

// instanceList returns the list backing, or NotImplementedError when the
// registry was built without one.
func (r *Registry) instanceList() (InstanceList, error) {
	if r.list == nil {
		return nil, errors.NewNotImplementedError("Model.getList")
	}
	return r.list, nil
}

func (r *Registry) findOne(typeName string, match func(*Instance) bool) (*Instance, error) {
	list, err := r.instanceList()
	if err != nil {
		return nil, err
	}
	inst, ok := list.Find(match)
	if !ok {
		return nil, errors.NewNotFoundError(typeName+" instance", "")
	}
	return inst, nil
}

func (r *Registry) create(c *Class, data map[string]any) (*Instance, error) {
	inst, err := r.constructLocked(c, data)
	if err != nil {
		return nil, err
	}
	return r.initialize(inst)
}

func (r *Registry) getOrCreate(c *Class, match func(*Instance) bool, seed map[string]any) (*Instance, error) {
	inst, created, err := r.findOrConstruct(c, match, seed)
	if err != nil || !created {
		return inst, err
	}
	return r.initialize(inst)
}

func (r *Registry) constructLocked(c *Class, data map[string]any) (*Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.construct(c, data)
}

// findOrConstruct looks up a match and constructs on a miss as one step
// under r.mu. created reports whether inst is new.
func (r *Registry) findOrConstruct(c *Class, match func(*Instance) bool, seed map[string]any) (inst *Instance, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.instanceList()
	if err != nil {
		return nil, false, err
	}
	if inst, ok := list.Find(match); ok {
		return inst, false, nil
	}
	inst, err = r.construct(c, seed)
	if err != nil {
		return nil, false, err
	}
	return inst, true, nil
}

// construct assigns a cid, loads data and appends the instance to the list.
// The caller holds r.mu.
func (r *Registry) construct(c *Class, data map[string]any) (*Instance, error) {
	list, err := r.instanceList()
	if err != nil {
		return nil, err
	}

	inst := &Instance{
		cid:    r.identity(),
		class:  c,
		values: make(map[string]any, c.schema.Len()),
	}
	if err := inst.load(data); err != nil {
		return nil, err
	}
	if err := list.Append(inst); err != nil {
		return nil, err
	}

	r.logger.Debug("model instance constructed", "type", c.name, "cid", inst.cid)
	return inst, nil
}

// initialize runs the Init hooks root first. A failing hook destructs the
// instance.
func (r *Registry) initialize(inst *Instance) (*Instance, error) {
	for _, c := range inst.class.lineage() {
		if c.init == nil {
			continue
		}
		if err := c.init(inst); err != nil {
			if _, derr := r.destruct(inst); derr != nil {
				r.logger.Error("Failed to destruct instance after init error", "cid", inst.cid, "error", derr)
			}
			return nil, err
		}
	}
	return inst, nil
}

func (r *Registry) destruct(inst *Instance) (bool, error) {
	list, err := r.instanceList()
	if err != nil {
		return false, err
	}
	if !list.Remove(inst) {
		return false, nil
	}

	for c := inst.class; c != nil; c = c.parent {
		if c.destruct != nil {
			c.destruct(inst)
		}
	}

	r.logger.Debug("model instance destructed", "type", inst.class.name, "cid", inst.cid)
	return true, nil
}
