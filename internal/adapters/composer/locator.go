// Package composer locates installed packages through Composer's local repository.
package composer

import (
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/scaffold/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.PackageLocator on top of vendor/composer/installed.json.
type Locator struct {
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// FindInstalled returns the installed package named name whose version satisfies constraint.
func (l *Locator) FindInstalled(project *domain.Project, name, constraint string) (*domain.Package, error) {
	pkgs, err := readRepository(project)
	if err != nil {
		return nil, err
	}

	match, err := versionMatcher(constraint)
	if err != nil {
		return nil, err
	}

	for _, p := range pkgs {
		if !strings.EqualFold(p.Name, name) {
			continue
		}
		if !match(p) {
			l.logger.Warn("Installed " + p.Name + " " + p.Version + " does not satisfy " + constraint)
			continue
		}
		return &domain.Package{
			Name:        p.Name,
			Version:     p.Version,
			Type:        p.Type,
			InstallPath: resolveRepositoryPath(project, p.InstallPath),
		}, nil
	}

	notFound := zerr.Wrap(domain.ErrPackageNotFound, "failed to locate package")
	notFound = zerr.With(notFound, "package", name)
	notFound = zerr.With(notFound, "constraint", constraint)
	return nil, zerr.With(notFound, "repository", repositoryPath(project))
}

// InstallPath returns the absolute install directory of pkg.
//
// The lookup order is the path already known for the package, the install-path
// recorded by Composer 2, the project's installer-paths, and finally the
// vendor directory.
func (l *Locator) InstallPath(project *domain.Project, pkg *domain.Package) (string, error) {
	if pkg == nil {
		return "", zerr.New("package is required")
	}

	if pkg.InstallPath != "" {
		return absPath(project.Root, pkg.InstallPath), nil
	}

	pkgType := pkg.Type
	pkgs, err := readRepository(project)
	if err != nil {
		return "", err
	}
	for _, p := range pkgs {
		if !strings.EqualFold(p.Name, pkg.Name) {
			continue
		}
		if p.InstallPath != "" {
			return resolveRepositoryPath(project, p.InstallPath), nil
		}
		if pkgType == "" {
			pkgType = p.Type
		}
		break
	}

	if path, ok := installerPath(project.Extra, pkg.Name, pkgType); ok {
		return absPath(project.Root, path), nil
	}

	return filepath.Join(project.VendorPath(), filepath.FromSlash(pkg.Name)), nil
}

// versionMatcher compiles constraint into a predicate over installed packages.
// Versions that are not semver, such as dev branches, only satisfy domain.AnyVersion.
func versionMatcher(constraint string) (func(installedPackage) bool, error) {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" || constraint == domain.AnyVersion {
		return func(installedPackage) bool { return true }, nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid version constraint"), "constraint", constraint)
	}

	return func(p installedPackage) bool {
		v, err := installedVersion(p)
		if err != nil {
			return false
		}
		return c.Check(v)
	}, nil
}

// installedVersion parses the pretty version, falling back to Composer's
// four-part normalized version (e.g. "9.1.0.0" for "9.1").
func installedVersion(p installedPackage) (*semver.Version, error) {
	if v, err := semver.NewVersion(p.Version); err == nil {
		return v, nil
	}
	return semver.NewVersion(trimNormalized(p.VersionNormalized))
}

func trimNormalized(v string) string {
	core, pre, hasPre := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	out := strings.Join(parts, ".")
	if hasPre {
		out += "-" + pre
	}
	return out
}

// resolveRepositoryPath resolves an install-path, which Composer records relative to vendor/composer.
func resolveRepositoryPath(project *domain.Project, installPath string) string {
	if installPath == "" {
		return ""
	}
	return absPath(filepath.Join(project.VendorPath(), "composer"), installPath)
}

func absPath(base, path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
