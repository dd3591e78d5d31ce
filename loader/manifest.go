/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/model"
	"github.com/suparena/declmodel/storage"
)

// Manifest is one YAML document of declarations.
type Manifest struct {
	AttributeTypes []AttributeTypeDecl `yaml:"attributeTypes"`
	Models         []ModelDecl         `yaml:"models"`
}

// ModelDecl declares one model type.
type ModelDecl struct {
	Name       string         `yaml:"name"`
	Extends    string         `yaml:"extends"`
	Storage    *StorageDecl   `yaml:"storage"`
	Attributes Attributes     `yaml:"attributes"`
	Props      map[string]any `yaml:"props"`
	Statics    map[string]any `yaml:"statics"`
}

// StorageDecl is decoded into storage overrides.
type StorageDecl struct {
	Name       string            `yaml:"name"`
	Table      string            `yaml:"table"`
	EntityType string            `yaml:"entityType"`
	IndexMap   map[string]string `yaml:"indexMap"`
	Options    map[string]any    `yaml:"options"`
}

// AttributeDecl is a single attribute descriptor. Besides type, modelType
// and default, every key lands in Options. A plain scalar is shorthand for
// the type name.
type AttributeDecl struct {
	Type      string
	ModelType string
	Default   any
	Options   map[string]any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *AttributeDecl) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Type = node.Value
		return nil
	}

	var fields map[string]any
	if err := node.Decode(&fields); err != nil {
		return err
	}
	return d.fromFields(fields, node.Line)
}

func (d *AttributeDecl) fromFields(fields map[string]any, line int) error {
	for key, v := range fields {
		switch key {
		case "type":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("line %d: attribute type must be a string", line)
			}
			d.Type = s
		case "modelType":
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("line %d: attribute modelType must be a string", line)
			}
			d.ModelType = s
		case "default":
			d.Default = v
		default:
			if d.Options == nil {
				d.Options = make(map[string]any)
			}
			d.Options[key] = v
		}
	}
	return nil
}

// Decl converts the descriptor for the model registry.
func (d AttributeDecl) Decl() attribute.Decl {
	return attribute.Decl{
		Type:      d.Type,
		ModelType: d.ModelType,
		Default:   d.Default,
		Options:   d.Options,
	}
}

// AttributeTypeDecl declares a named custom attribute type.
type AttributeTypeDecl struct {
	Name string
	AttributeDecl
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *AttributeTypeDecl) UnmarshalYAML(node *yaml.Node) error {
	var fields map[string]any
	if err := node.Decode(&fields); err != nil {
		return err
	}

	name, _ := fields["name"].(string)
	if name == "" {
		return fmt.Errorf("line %d: attribute type without a name", node.Line)
	}
	delete(fields, "name")

	d.Name = name
	return d.AttributeDecl.fromFields(fields, node.Line)
}

// NamedAttribute is one entry of an Attributes mapping.
type NamedAttribute struct {
	Name string
	Decl AttributeDecl
}

// Attributes keeps the order of the YAML mapping it was decoded from.
type Attributes []NamedAttribute

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}

	res := make(Attributes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var decl AttributeDecl
		if err := node.Content[i+1].Decode(&decl); err != nil {
			return fmt.Errorf("attribute %q: %w", node.Content[i].Value, err)
		}
		res = append(res, NamedAttribute{Name: node.Content[i].Value, Decl: decl})
	}
	*a = res
	return nil
}

// Properties converts the declaration into model properties.
func (d ModelDecl) Properties() model.Properties {
	props := model.Properties{Props: d.Props}
	for _, attr := range d.Attributes {
		props.Attributes = append(props.Attributes, model.Attr(attr.Name, attr.Decl.Decl()))
	}
	if d.Storage != nil {
		props.Storage = storage.Overrides{
			Name:       d.Storage.Name,
			Table:      d.Storage.Table,
			EntityType: d.Storage.EntityType,
			IndexMap:   d.Storage.IndexMap,
			Options:    d.Storage.Options,
		}
	}
	return props
}

// Parse decodes every YAML document in data into one manifest.
func Parse(data []byte) (*Manifest, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads every YAML document from r into one manifest. Unknown keys
// at the model level are rejected.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	for {
		var doc Manifest
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode manifest: %w", err)
		}
		m.AttributeTypes = append(m.AttributeTypes, doc.AttributeTypes...)
		m.Models = append(m.Models, doc.Models...)
	}
	return &m, nil
}
