package composer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

// installedPackage is a package entry of vendor/composer/installed.json.
type installedPackage struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	VersionNormalized string `json:"version_normalized"`
	Type              string `json:"type"`
	InstallPath       string `json:"install-path"`
}

// installedFile is the Composer 2 layout of installed.json.
type installedFile struct {
	Packages []installedPackage `json:"packages"`
}

// repositoryPath returns the installed.json path of the project.
func repositoryPath(project *domain.Project) string {
	return filepath.Join(project.VendorPath(), "composer", "installed.json")
}

// readRepository loads the local repository. A missing file is an empty repository.
func readRepository(project *domain.Project) ([]installedPackage, error) {
	path := repositoryPath(project)

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read installed packages"), "path", path)
	}

	return parseRepository(data, path)
}

// parseRepository accepts both the Composer 1 array and the Composer 2 object layout.
func parseRepository(data []byte, path string) ([]installedPackage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var pkgs []installedPackage
		if err := json.Unmarshal(trimmed, &pkgs); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse installed packages"), "path", path)
		}
		return pkgs, nil
	}

	var file installedFile
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse installed packages"), "path", path)
	}
	return file.Packages, nil
}
