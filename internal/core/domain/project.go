package domain

import "path/filepath"

// DefaultVendorDir is the vendor directory used when composer.json does not set config.vendor-dir.
const DefaultVendorDir = "vendor"

// Project is the consuming project as described by its composer.json.
type Project struct {
	// Root is the absolute directory containing composer.json.
	Root string

	// VendorDir is the vendor directory, relative to Root unless absolute.
	VendorDir string

	// Extra is the raw "extra" section of composer.json.
	Extra map[string]any
}

// VendorPath returns the absolute vendor directory.
func (p *Project) VendorPath() string {
	dir := p.VendorDir
	if dir == "" {
		dir = DefaultVendorDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(p.Root, dir)
}
