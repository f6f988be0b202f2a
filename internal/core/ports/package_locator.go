package ports

import "go.trai.ch/scaffold/internal/core/domain"

// PackageLocator looks up installed packages in the host's local repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_locator.go -destination=mocks/mock_package_locator.go -package=mocks
type PackageLocator interface {
	// FindInstalled returns the installed package named name whose version satisfies constraint.
	// domain.AnyVersion matches every version.
	// Returns an error wrapping domain.ErrPackageNotFound when nothing matches.
	FindInstalled(project *domain.Project, name, constraint string) (*domain.Package, error)

	// InstallPath returns the absolute directory the package is installed into.
	InstallPath(project *domain.Project, pkg *domain.Package) (string, error)
}
