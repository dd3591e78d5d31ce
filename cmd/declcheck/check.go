/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/declmodel/attribute"
	"github.com/suparena/declmodel/model"
	"github.com/suparena/declmodel/registry"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load all manifests and list the declared types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, paths, err := a.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			types := reg.Types()
			for _, name := range types.Names() {
				if c, ok := registry.Lookup[*model.Class](types, name); ok {
					fmt.Fprintf(out, "model     %-20s extends %-20s %d attributes\n",
						name, c.Parent().TypeName(), c.Schema().Len())
					continue
				}
				if ac, ok := registry.Lookup[*attribute.Class](types, name); ok {
					fmt.Fprintf(out, "attribute %-20s kind    %s\n", name, ac.Kind())
				}
			}
			fmt.Fprintf(out, "ok: %d files, %d types\n", len(paths), types.Len())
			return nil
		},
	}
}
