/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suparena/declmodel/attribute"
)

// newTestRegistry returns a registry with predictable cids c1, c2, ...
func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	n := 0
	identity := func() string {
		n++
		return fmt.Sprintf("c%d", n)
	}
	return New(append([]Option{WithIdentity(identity)}, opts...)...)
}

func declarePerson(t *testing.T, r *Registry) *Class {
	t.Helper()
	c, err := r.Declare("Person", Properties{
		Attributes: []AttributeDef{
			Attr("id", attribute.Decl{Type: attribute.KindID}),
			Attr("name", attribute.Decl{Type: attribute.KindString}),
		},
	})
	require.NoError(t, err)
	return c
}

func countOf(t *testing.T, r *Registry, typeName string) int {
	t.Helper()
	n, err := r.CountByType(typeName)
	require.NoError(t, err)
	return n
}

func instancesOf(t *testing.T, c *Class) []*Instance {
	t.Helper()
	list, err := c.Instances()
	require.NoError(t, err)
	return list
}

func mustDestruct(t *testing.T, inst *Instance) bool {
	t.Helper()
	removed, err := inst.Destruct()
	require.NoError(t, err)
	return removed
}
