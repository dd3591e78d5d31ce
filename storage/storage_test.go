/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storage

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/declmodel/errors"
)

func TestExtend_MergesOverrides(t *testing.T) {
	base := New(Overrides{
		Name:       "PeopleStorage",
		Table:      "people",
		EntityType: "PERSON",
		IndexMap:   map[string]string{"PK": "PERSON#{id}", "SK": "PERSON#{id}"},
		Options:    map[string]any{"consistentRead": true},
	})

	child := base.Extend(Overrides{
		EntityType: "STAFF",
		IndexMap:   map[string]string{"SK": "STAFF#{id}", "GSI1PK": "TEAM#{team}"},
	})

	assert.Equal(t, "PeopleStorage", child.Name())
	assert.Equal(t, "people", child.Table())
	assert.Equal(t, "STAFF", child.EntityType())
	assert.Equal(t, map[string]string{
		"PK":     "PERSON#{id}",
		"SK":     "STAFF#{id}",
		"GSI1PK": "TEAM#{team}",
	}, child.IndexMap())

	v, ok := child.Option("consistentRead")
	require.True(t, ok)
	assert.Equal(t, true, v)

	assert.True(t, child.Is(base))
	assert.True(t, child.Is(Default()))
	assert.False(t, base.Is(child))
	assert.Same(t, base, child.Parent())

	// the parent is left untouched
	assert.Equal(t, "PERSON", base.EntityType())
	assert.Len(t, base.IndexMap(), 2)
}

func TestExpandKeys(t *testing.T) {
	c := New(Overrides{
		IndexMap: map[string]string{
			"PK":     "PERSON#{id}",
			"SK":     "AGE#{age}#{active}",
			"GSI1PK": "{missing}",
		},
	})

	expanded, err := c.ExpandKeys(map[string]any{
		"id":     "p1",
		"age":    42,
		"active": true,
		"friend": []any{"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"PK":     "PERSON#p1",
		"SK":     "AGE#42#true",
		"GSI1PK": "",
	}, expanded)
}

func TestKeys_NoIndexMap(t *testing.T) {
	_, err := Default().Keys(map[string]any{"id": "p1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoIndexMap)
}

func TestItem_InjectsEntityType(t *testing.T) {
	c := New(Overrides{
		EntityType: "PERSON",
		IndexMap:   map[string]string{"PK": "PERSON#{id}"},
	})

	item, err := c.Item(map[string]any{"id": "p1", "name": "Ada"})
	require.NoError(t, err)

	assert.Equal(t, &types.AttributeValueMemberS{Value: "PERSON#p1"}, item["PK"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "PERSON"}, item[EntityTypeAttribute])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "Ada"}, item["name"])
}
