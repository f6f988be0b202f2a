// Package config provides the composer.json configuration loader.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultFilename is the project manifest read from the working directory.
	DefaultFilename = "composer.json"

	// FilenameEnv overrides the manifest filename, as Composer's COMPOSER variable does.
	FilenameEnv = "COMPOSER"
)

// Loader implements ports.ConfigLoader by reading composer.json.
type Loader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	filename := os.Getenv(FilenameEnv)
	if filename == "" {
		filename = DefaultFilename
	}
	return &Loader{
		Filename: filename,
		logger:   logger,
	}
}

// Load reads the manifest in cwd and returns the project it describes.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "cwd", cwd)
	}

	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	project, err := Load(path)
	if err != nil {
		return nil, err
	}

	if _, ok := project.Extra[domain.ConfigKey]; !ok && l.logger != nil {
		l.logger.Info("No " + domain.ConfigKey + " configuration found, using defaults")
	}
	return project, nil
}

// Load reads a composer.json file from the given path and returns a domain.Project.
// The project root is the directory containing the file.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrComposerFileNotFound, "failed to load project"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read composer file"), "path", path)
	}

	var file ComposerFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse composer file"), "path", path)
	}

	extra := file.Extra
	if extra == nil {
		extra = make(map[string]any)
	}

	vendorDir := file.Config.VendorDir
	if vendorDir == "" {
		vendorDir = domain.DefaultVendorDir
	}

	return &domain.Project{
		Root:      filepath.Dir(path),
		VendorDir: vendorDir,
		Extra:     extra,
	}, nil
}
