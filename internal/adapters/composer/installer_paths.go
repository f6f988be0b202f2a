package composer

import (
	"sort"
	"strings"
)

// installerPath resolves the composer/installers "installer-paths" entry for a package.
// Exact package names win over "type:" and "vendor:" matches.
func installerPath(extra map[string]any, name, pkgType string) (string, bool) {
	paths, ok := extra["installer-paths"].(map[string]any)
	if !ok {
		return "", false
	}

	vendor, project, _ := strings.Cut(strings.ToLower(name), "/")

	// Iterate in a stable order; map order would make ambiguous configs flaky.
	keys := make([]string, 0, len(paths))
	for k := range paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var byType, byVendor string
	for _, path := range keys {
		patterns, ok := paths[path].([]any)
		if !ok {
			continue
		}
		for _, raw := range patterns {
			pattern, ok := raw.(string)
			if !ok {
				continue
			}
			switch {
			case strings.EqualFold(pattern, name):
				return expandInstallerPath(path, vendor, project, pkgType), true
			case pkgType != "" && strings.EqualFold(pattern, "type:"+pkgType) && byType == "":
				byType = path
			case strings.EqualFold(pattern, "vendor:"+vendor) && byVendor == "":
				byVendor = path
			}
		}
	}

	switch {
	case byType != "":
		return expandInstallerPath(byType, vendor, project, pkgType), true
	case byVendor != "":
		return expandInstallerPath(byVendor, vendor, project, pkgType), true
	default:
		return "", false
	}
}

func expandInstallerPath(path, vendor, name, pkgType string) string {
	return strings.NewReplacer(
		"{$name}", name,
		"{$vendor}", vendor,
		"{$type}", pkgType,
	).Replace(path)
}
