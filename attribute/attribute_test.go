/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"math"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/declmodel/errors"
)

type fakeInstance struct{ typeName string }

type fakeModelType struct{ name string }

func (m fakeModelType) TypeName() string { return m.name }

func (m fakeModelType) Accepts(v any) bool {
	inst, ok := v.(*fakeInstance)
	return ok && inst.typeName == m.name
}

func TestExtend_KeepsChainAndOverrides(t *testing.T) {
	short := String.Extend(Decl{Default: "n/a", Options: map[string]any{"maxLength": 8}})

	assert.Equal(t, KindString, short.Kind())
	assert.Equal(t, KindString, short.TypeName())
	assert.Same(t, String, short.Parent())
	assert.True(t, short.Is(String))
	assert.False(t, String.Is(short))
	assert.Equal(t, "n/a", short.Default())

	v, ok := short.Option("maxLength")
	require.True(t, ok)
	assert.Equal(t, 8, v)
	_, ok = String.Option("maxLength")
	assert.False(t, ok, "options must not leak into the parent")

	slug := short.Named("Slug")
	assert.Equal(t, "Slug", slug.TypeName())
	assert.Equal(t, KindString, slug.Kind())
	assert.True(t, slug.Is(short))
}

func TestIdentifyingFlag(t *testing.T) {
	assert.True(t, ID.IsID())
	assert.True(t, ID.Extend(Decl{}).IsID(), "flag is inherited")
	assert.True(t, ID.Named("Key").IsID())
	assert.False(t, String.IsID())
	assert.False(t, New("Custom", nil).IsID())
	assert.True(t, New("Custom", nil, Identifying()).IsID())
}

func TestNormalize_Builtins(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		class *Class
		in    any
		want  any
	}{
		{name: "string", class: String, in: "Ada", want: "Ada"},
		{name: "string default", class: String, in: nil, want: ""},
		{name: "stringer", class: String, in: strfmt.UUID("x"), want: "x"},
		{name: "number int", class: Number, in: 42, want: float64(42)},
		{name: "number float32", class: Number, in: float32(1.5), want: float64(1.5)},
		{name: "number unset", class: Number, in: nil, want: nil},
		{name: "boolean", class: Boolean, in: true, want: true},
		{name: "boolean default", class: Boolean, in: nil, want: false},
		{name: "id string", class: ID, in: "p1", want: "p1"},
		{name: "id int", class: ID, in: 7, want: int64(7)},
		{name: "id uint", class: ID, in: uint8(7), want: int64(7)},
		{name: "id uint above int64", class: ID, in: uint64(1 << 63), want: uint64(1 << 63)},
		{name: "datetime time", class: DateTime, in: at, want: strfmt.DateTime(at)},
		{name: "uuid", class: UUID, in: "a8098c1a-f86e-11da-bd1a-00112444be1e", want: strfmt.UUID("a8098c1a-f86e-11da-bd1a-00112444be1e")},
		{name: "email", class: Email, in: "ada@example.com", want: strfmt.Email("ada@example.com")},
		{name: "object", class: Object, in: map[string]any{"a": 1}, want: map[string]any{"a": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.class.Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		class *Class
		in    any
	}{
		{name: "string", class: String, in: 3},
		{name: "number", class: Number, in: "3"},
		{name: "boolean", class: Boolean, in: "yes"},
		{name: "id", class: ID, in: 1.5},
		{name: "datetime", class: DateTime, in: "yesterday"},
		{name: "uuid", class: UUID, in: "not-a-uuid"},
		{name: "email", class: Email, in: "nobody"},
		{name: "object", class: Object, in: []int{1}},
		{name: "unbound model", class: Model, in: &fakeInstance{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.class.Normalize(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestDateTimeFromString(t *testing.T) {
	got, err := DateTime.Normalize("2025-03-01T10:30:00Z")
	require.NoError(t, err)

	want := strfmt.DateTime(time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC))
	assert.True(t, DateTime.Equal(got, want))
}

func TestRelational(t *testing.T) {
	person := fakeModelType{name: "Person"}
	owner := Model.Extend(Decl{}).Bind(person)
	members := ModelsList.Extend(Decl{}).Bind(person)

	assert.True(t, owner.Relational())
	assert.True(t, members.Relational())
	assert.False(t, String.Relational())
	assert.Equal(t, "Person", owner.ModelType().TypeName())
	assert.Nil(t, Model.ModelType(), "binding must not touch the generic kind")

	ada := &fakeInstance{typeName: "Person"}
	team := &fakeInstance{typeName: "Team"}

	v, err := owner.Normalize(ada)
	require.NoError(t, err)
	assert.Same(t, ada, v)

	_, err = owner.Normalize(team)
	assert.True(t, errors.IsValidationError(err))

	list, err := members.Normalize([]*fakeInstance{ada, ada})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = members.Normalize([]any{ada, team})
	assert.True(t, errors.IsValidationError(err))

	assert.True(t, members.Equal(list, []any{ada, ada}))
	assert.False(t, members.Equal(list, []any{ada}))
}

func TestEqual(t *testing.T) {
	assert.True(t, ID.Equal("p1", "p1"))
	assert.False(t, ID.Equal("p1", "p2"))
	assert.True(t, ID.Equal(int64(3), 3))
	assert.False(t, ID.Equal("3", 3))
	assert.False(t, ID.Equal("p1", 1.5), "invalid values never match")
	assert.True(t, Object.Equal(map[string]any{"a": []any{1}}, map[string]any{"a": []any{1}}))

	// large unsigned ids must not wrap onto negative ones
	assert.False(t, ID.Equal(int64(math.MinInt64), uint64(1<<63)))
	assert.True(t, ID.Equal(uint64(1<<63), uint64(1<<63)))
	assert.True(t, ID.Equal(int64(5), uint32(5)))
}

type opaqueKey struct {
	n    int
	tags []string
}

func TestValueEqual_UnexportedFields(t *testing.T) {
	a := opaqueKey{n: 1, tags: []string{"x"}}

	assert.NotPanics(t, func() {
		assert.True(t, ValueEqual(a, opaqueKey{n: 1, tags: []string{"x"}}))
		assert.False(t, ValueEqual(a, opaqueKey{n: 2, tags: []string{"x"}}))
		assert.False(t, ValueEqual(a, opaqueKey{n: 1}))
		assert.False(t, ValueEqual(a, "1"))
	})
}

func TestBuiltins(t *testing.T) {
	b := Builtins()
	assert.Same(t, ID, b[IDKind])
	assert.Len(t, b, 11)

	b["Custom"] = New("Custom", nil)
	assert.NotContains(t, Builtins(), "Custom", "each call returns a fresh table")

	for _, kind := range []string{KindModel, KindModelsList, KindCollection} {
		assert.True(t, IsRelational(kind), kind)
	}
	assert.False(t, IsRelational(KindID))
}
