package config

// ComposerFile represents the parts of composer.json the scaffolder reads.
type ComposerFile struct {
	Name   string         `json:"name"`
	Extra  map[string]any `json:"extra"`
	Config ComposerConfig `json:"config"`
}

// ComposerConfig represents the "config" section of composer.json.
type ComposerConfig struct {
	VendorDir string `json:"vendor-dir"`
}
