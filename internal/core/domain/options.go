package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// ConfigKey is the key of the scaffold section inside the composer.json "extra" map.
const ConfigKey = "drupal-scaffold"

// DefaultSource is the HTTP archive template used when no source is configured.
const DefaultSource = "https://ftp.drupal.org/files/projects/drupal-{version}.tar.gz"

// Method selects the download strategy.
type Method string

const (
	// MethodDrush downloads the scaffold files with drush.
	MethodDrush Method = "drush"
	// MethodHTTP downloads the scaffold files from an archive URL.
	MethodHTTP Method = "http"
)

// ParseMethod validates a configured method value.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodDrush, MethodHTTP:
		return m, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownMethod, "invalid scaffold configuration"), "method", s)
	}
}

// DefaultExcludes lists the paths of the core distribution that are never copied.
func DefaultExcludes() []string {
	return []string{
		".gitkeep",
		"autoload.php",
		"composer.json",
		"composer.lock",
		"core",
		"drush",
		"example.gitignore",
		"LICENSE.txt",
		"README.txt",
		"vendor",
		"sites",
		"themes",
		"profiles",
		"modules",
	}
}

// DefaultSettings lists the settings templates copied alongside the scaffold files.
func DefaultSettings() []string {
	return []string{
		"sites/default/default.settings.php",
		"sites/default/default.services.yml",
		"sites/example.settings.local.php",
		"sites/example.sites.php",
	}
}

// ScaffoldOptions is the resolved scaffold configuration.
type ScaffoldOptions struct {
	OmitDefaults bool
	Excludes     []string
	Settings     []string
	Method       Method
	Source       string
}

// ResolveOptions merges the project's raw extra configuration with the compiled defaults.
// Explicit list entries are appended after the defaults unless omit-defaults is set.
// Malformed values are coerced rather than rejected; the method is validated by the caller.
func ResolveOptions(extra map[string]any) ScaffoldOptions {
	raw, _ := extra[ConfigKey].(map[string]any)

	opts := ScaffoldOptions{
		Method: MethodDrush,
		Source: DefaultSource,
	}
	if v, ok := raw["omit-defaults"].(bool); ok {
		opts.OmitDefaults = v
	}
	if v, ok := raw["method"]; ok && v != nil {
		opts.Method = Method(strings.TrimSpace(fmt.Sprint(v)))
	}
	if v, ok := raw["source"].(string); ok && v != "" {
		opts.Source = v
	}

	opts.Excludes = mergeDefaults(DefaultExcludes(), stringList(raw["excludes"]), opts.OmitDefaults)
	opts.Settings = mergeDefaults(DefaultSettings(), stringList(raw["settings"]), opts.OmitDefaults)

	return opts
}

func mergeDefaults(defaults, explicit []string, omitDefaults bool) []string {
	if omitDefaults {
		return explicit
	}
	return append(defaults, explicit...)
}

// stringList coerces a raw list value into strings, dropping anything that is not a string.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return append([]string{}, ss...)
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
