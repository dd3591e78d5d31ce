/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package declmodel

import (
	"sync"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/model"
)

// Aliases for the types most callers of the package-level API touch.
type (
	Class        = model.Class
	Instance     = model.Instance
	Properties   = model.Properties
	Statics      = model.Statics
	AttributeDef = model.AttributeDef
)

// Attr pairs an attribute name with its declaration.
var Attr = model.Attr

var (
	defaultMu  sync.Mutex
	defaultReg *model.Registry
)

// Default returns the process-wide registry, creating it on first use.
func Default() *model.Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultReg == nil {
		defaultReg = model.New()
	}
	return defaultReg
}

// SetDefault replaces the process-wide registry and returns the previous one.
// A nil registry is recreated lazily by the next Default call.
func SetDefault(r *model.Registry) *model.Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultReg
	defaultReg = r
	return prev
}

// Reset drops the process-wide registry together with every declared type
// and live instance.
func Reset() {
	SetDefault(nil)
}

// Declare declares name on the default registry.
func Declare(name string, props Properties, statics ...Statics) (*Class, error) {
	return Default().Declare(name, props, statics...)
}

// Extend declares name extending base on the default registry.
func Extend(name, base string, props Properties, statics ...Statics) (*Class, error) {
	return Default().Extend(name, base, props, statics...)
}

// DeclareAttributeType declares a custom attribute type on the default
// registry.
func DeclareAttributeType(name string, decl attribute.Declaration) (*attribute.Class, error) {
	return Default().DeclareAttributeType(name, decl)
}

// GetOne returns the first live instance of any type.
func GetOne() (*Instance, error) {
	return Default().GetOne()
}

// GetOneByCID returns the live instance with the given cid.
func GetOneByCID(cid string) (*Instance, error) {
	return Default().GetOneByCID(cid)
}

// GetList returns the live instances in insertion order.
func GetList() ([]*Instance, error) {
	return Default().GetList()
}
