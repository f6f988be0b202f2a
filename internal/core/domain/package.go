// Package domain contains the core domain models and business logic for scaffolding.
package domain

const (
	// TriggerPackageName is the package whose install or update activates scaffolding.
	TriggerPackageName = "drupal/core"

	// ToolPackageName is the package providing the drush executable.
	ToolPackageName = "drush/drush"

	// ToolExecutable is the drush executable relative to the drush install path.
	ToolExecutable = "drush"

	// AnyVersion is the version constraint that matches every installed version.
	AnyVersion = "*"
)

// Package represents an installed package as reported by the host package manager.
type Package struct {
	// Name is the canonical package name (e.g., "drupal/core").
	Name string `json:"name"`

	// Version is the pretty version string (e.g., "9.1.0").
	Version string `json:"version"`

	// Type is the package type (e.g., "drupal-core"), used by installer-paths.
	Type string `json:"type,omitempty"`

	// InstallPath is the install directory when the host already knows it.
	InstallPath string `json:"install-path,omitempty"`
}

// IsTrigger reports whether the package activates scaffolding.
func (p *Package) IsTrigger() bool {
	return p != nil && p.Name == TriggerPackageName
}

// Operation is a package operation completed by the host package manager.
// The set of implementations is closed: InstallOperation, UpdateOperation and UninstallOperation.
type Operation interface {
	operation()
}

// InstallOperation reports a freshly installed package.
type InstallOperation struct {
	Package Package
}

// UpdateOperation reports a package moved from Initial to Target.
type UpdateOperation struct {
	Initial Package
	Target  Package
}

// UninstallOperation reports a removed package.
type UninstallOperation struct {
	Package Package
}

func (InstallOperation) operation()   {}
func (UpdateOperation) operation()    {}
func (UninstallOperation) operation() {}

// ResultPackage returns the package an operation leaves installed.
// Uninstall operations leave nothing behind and return nil.
func ResultPackage(op Operation) *Package {
	switch o := op.(type) {
	case InstallOperation:
		return &o.Package
	case UpdateOperation:
		return &o.Target
	case UninstallOperation:
		return nil
	default:
		return nil
	}
}
