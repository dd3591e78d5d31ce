/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/suparena/declmodel/model"
)

type attributeView struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Kind      string `yaml:"kind"`
	ID        bool   `yaml:"id,omitempty"`
	ModelType string `yaml:"modelType,omitempty"`
	Default   any    `yaml:"default,omitempty"`
}

type storageView struct {
	Name       string            `yaml:"name"`
	Table      string            `yaml:"table,omitempty"`
	EntityType string            `yaml:"entityType,omitempty"`
	IndexMap   map[string]string `yaml:"indexMap,omitempty"`
}

type classView struct {
	Name       string          `yaml:"name"`
	Extends    string          `yaml:"extends"`
	IDField    string          `yaml:"idAttribute"`
	Attributes []attributeView `yaml:"attributes"`
	Storage    storageView     `yaml:"storage"`
	Statics    map[string]any  `yaml:"statics,omitempty"`
}

func newClassView(c *model.Class) classView {
	st := c.Storage()
	view := classView{
		Name:    c.TypeName(),
		Extends: c.Parent().TypeName(),
		IDField: c.IDAttributeName(),
		Storage: storageView{
			Name:       st.Name(),
			Table:      st.Table(),
			EntityType: st.EntityType(),
			IndexMap:   st.IndexMap(),
		},
		Statics: c.Statics(),
	}
	for name, ac := range c.Schema().All() {
		av := attributeView{
			Name:    name,
			Type:    ac.TypeName(),
			Kind:    ac.Kind(),
			ID:      ac.IsID(),
			Default: ac.Default(),
		}
		if mt := ac.ModelType(); mt != nil {
			av.ModelType = mt.TypeName()
		}
		view.Attributes = append(view.Attributes, av)
	}
	return view
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show TYPE",
		Short: "Print the resolved schema and storage of a model type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := a.load()
			if err != nil {
				return err
			}
			c, err := reg.Class(args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newClassView(c)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
