/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/errors"
	"github.com/suparena/declmodel/model"
)

const peopleManifest = `
attributeTypes:
  - name: Slug
    type: String
    default: untitled
    maxLength: 40

models:
  - name: Person
    storage:
      table: people
      entityType: PERSON
      indexMap:
        PK: "PERSON#{id}"
        SK: "PROFILE"
    attributes:
      id: Id
      name:
        type: String
        default: anonymous
      slug: Slug
    props:
      label: human
  - name: Team
    attributes:
      lead:
        type: Model
        modelType: Person
      members:
        type: ModelsList
        modelType: Person
    statics:
      plural: teams
`

func TestParse_KeepsAttributeOrder(t *testing.T) {
	m, err := Parse([]byte(peopleManifest))
	require.NoError(t, err)

	require.Len(t, m.AttributeTypes, 1)
	slug := m.AttributeTypes[0]
	assert.Equal(t, "Slug", slug.Name)
	assert.Equal(t, "String", slug.Type)
	assert.Equal(t, "untitled", slug.Default)
	assert.Equal(t, map[string]any{"maxLength": 40}, slug.Options)

	require.Len(t, m.Models, 2)
	person := m.Models[0]
	var names []string
	for _, a := range person.Attributes {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"id", "name", "slug"}, names)
	assert.Equal(t, "Id", person.Attributes[0].Decl.Type)
	assert.Equal(t, "anonymous", person.Attributes[1].Decl.Default)
	require.NotNil(t, person.Storage)
	assert.Equal(t, "PERSON#{id}", person.Storage.IndexMap["PK"])

	team := m.Models[1]
	assert.Equal(t, "Person", team.Attributes[0].Decl.ModelType)
	assert.Equal(t, "teams", team.Statics["plural"])
}

func TestParse_MultipleDocuments(t *testing.T) {
	m, err := Parse([]byte("models:\n  - name: A\n---\nmodels:\n  - name: B\n"))
	require.NoError(t, err)
	require.Len(t, m.Models, 2)
	assert.Equal(t, "A", m.Models[0].Name)
	assert.Equal(t, "B", m.Models[1].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown model key", "models:\n  - name: A\n    colour: red\n"},
		{"attributes not a mapping", "models:\n  - name: A\n    attributes: [id]\n"},
		{"attribute type without name", "attributeTypes:\n  - type: String\n"},
		{"non-string type", "models:\n  - name: A\n    attributes:\n      id:\n        type: [1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestApply_DeclaresTypes(t *testing.T) {
	reg := model.New()
	m, err := Parse([]byte(peopleManifest))
	require.NoError(t, err)
	require.NoError(t, New(reg).Apply(m))

	slug, err := reg.AttributeType("Slug")
	require.NoError(t, err)
	assert.True(t, slug.Is(attribute.String))
	assert.Equal(t, "untitled", slug.Default())

	person, err := reg.Class("Person")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "slug"}, person.Schema().Names())
	assert.Equal(t, "people", person.Storage().Table())
	label, _ := person.Prop("label")
	assert.Equal(t, "human", label)

	team, err := reg.Class("Team")
	require.NoError(t, err)
	lead, _ := team.Schema().Get("lead")
	assert.Equal(t, "Person", lead.ModelType().TypeName())

	p, err := person.GetAnyByID("p1")
	require.NoError(t, err)
	keys, err := p.Class().Storage().ExpandKeys(p.Data())
	require.NoError(t, err)
	assert.Equal(t, "PERSON#p1", keys["PK"])
	v, _ := p.Get("slug")
	assert.Equal(t, "untitled", v)
}

func TestApply_Extends(t *testing.T) {
	reg := model.New()
	doc := `
models:
  - name: Person
    attributes:
      id: Id
  - name: Employee
    extends: Person
    attributes:
      email: Email
`
	m, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, New(reg).Apply(m))

	employee, err := reg.Class("Employee")
	require.NoError(t, err)
	assert.Equal(t, "Person", employee.Parent().TypeName())
	assert.Equal(t, []string{"id", "email"}, employee.Schema().Names())
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		check func(error) bool
	}{
		{
			name:  "unknown base",
			doc:   "models:\n  - name: A\n    extends: Nope\n",
			check: errors.IsUnknownBaseType,
		},
		{
			name:  "unknown attribute type",
			doc:   "models:\n  - name: A\n    attributes:\n      x: Nope\n",
			check: errors.IsUnknownAttributeType,
		},
		{
			name:  "unknown model type",
			doc:   "models:\n  - name: A\n    attributes:\n      x:\n        type: Model\n        modelType: Nope\n",
			check: errors.IsUnknownAttributeModelType,
		},
		{
			name:  "missing name",
			doc:   "models:\n  - extends: Model\n",
			check: errors.IsValidationError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			err = New(model.New()).Apply(m)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestLoadDir_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	// Team references Person, so 10_ must load before 20_.
	writeFile(t, filepath.Join(dir, "20_team.yml"), "models:\n  - name: Team\n    attributes:\n      lead:\n        type: Model\n        modelType: Person\n")
	writeFile(t, filepath.Join(dir, "10_person.yaml"), "models:\n  - name: Person\n    attributes:\n      id: Id\n")
	writeFile(t, filepath.Join(dir, "README.md"), "ignored")

	reg := model.New()
	paths, err := New(reg).LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "10_person.yaml"),
		filepath.Join(dir, "20_team.yml"),
	}, paths)
	assert.Equal(t, []string{"Person", "Team"}, reg.Types().Names())
}

func TestLoadDir_Empty(t *testing.T) {
	paths, err := New(model.New()).LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := New(model.New()).LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
