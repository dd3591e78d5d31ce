/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suparena/declmodel"
	"github.com/suparena/declmodel/loader"
	"github.com/suparena/declmodel/model"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "declcheck",
		Short:         "Validate declarative model manifests",
		Long:          `declcheck loads YAML model manifests, resolves every declaration and reports the resulting types.`,
		Version:       declmodel.Version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, cmd, a.cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
			return nil
		},
	}

	info := declmodel.GetVersionInfo()
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"declcheck version %s\nGit commit: %s\nBuild date: %s\nGo version: %s\n",
		info.Version, info.GitCommit, info.BuildDate, info.GoVersion))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./declcheck.yaml)")
	flags.StringP("dir", "d", ".", "directory of model manifests")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text, json")

	rootCmd.AddCommand(newCheckCmd(a), newShowCmd(a))
	return rootCmd
}

// load declares every manifest under the configured directory into a fresh
// registry.
func (a *app) load() (*model.Registry, []string, error) {
	reg := model.New(model.WithLogger(a.logger))
	paths, err := loader.New(reg, loader.WithLogger(a.logger)).LoadDir(a.cfg.Dir)
	if err != nil {
		return nil, nil, err
	}
	return reg, paths, nil
}
