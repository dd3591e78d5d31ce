/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/suparena/declmodel/errors"
	"github.com/suparena/declmodel/model"
)

// Loader declares manifests into a model registry.
type Loader struct {
	reg    *model.Registry
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// New creates a Loader declaring into reg.
func New(reg *model.Registry, opts ...Option) *Loader {
	l := &Loader{
		reg:    reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Apply declares the manifest's attribute types, then its models, in order.
// It stops at the first failing declaration.
func (l *Loader) Apply(m *Manifest) error {
	for _, at := range m.AttributeTypes {
		if _, err := l.reg.DeclareAttributeType(at.Name, at.Decl()); err != nil {
			return fmt.Errorf("attribute type %s: %w", at.Name, err)
		}
	}

	for _, md := range m.Models {
		if md.Name == "" {
			return errors.NewValidationError("name", "model declaration without a name")
		}
		var err error
		if md.Extends != "" {
			_, err = l.reg.Extend(md.Name, md.Extends, md.Properties(), md.Statics)
		} else {
			_, err = l.reg.Declare(md.Name, md.Properties(), md.Statics)
		}
		if err != nil {
			return fmt.Errorf("model %s: %w", md.Name, err)
		}
	}
	return nil
}

// LoadFile parses and applies one manifest file.
func (l *Loader) LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := l.Apply(m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("manifest loaded",
		"file", path,
		"attribute_types", len(m.AttributeTypes),
		"models", len(m.Models))
	return m, nil
}

// LoadDir applies every .yaml and .yml file under dir, recursively, in
// lexical path order so cross-file references resolve predictably. It
// returns the loaded file paths.
func (l *Loader) LoadDir(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		l.logger.Error("Failed to walk manifest directory", "path", dir, "error", err)
		return nil, err
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		l.logger.Warn("No manifest files found in path", "path", dir)
		return nil, nil
	}

	for _, path := range paths {
		if _, err := l.LoadFile(path); err != nil {
			return nil, err
		}
	}

	l.logger.Info("Manifests loaded", "path", dir, "files", len(paths), "types", l.reg.Types().Len())
	return paths, nil
}
