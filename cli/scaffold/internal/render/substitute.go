package render

import (
	"strings"
	"unicode/utf8"

	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/scaffold/internal/manifest"
)

// substitutedFiles is the set of output file names whose content gets
// placeholder substitution. Everything else is copied byte for byte.
var substitutedFiles = []string{
	"Cargo.toml",
	"package.json",
	"tauri.conf.json",
	"main.rs",
	"vite.config.ts",
	"vite.config.js",
	"Trunk.toml",
	"angular.json",
}

// LibName returns the crate library name of a package:
// dashes become underscores and a _lib suffix is added.
func LibName(packageName string) string {
	return strings.ReplaceAll(packageName, "-", "_") + "_lib"
}

// Substitute applies placeholder substitution to data if targetName is
// a substituted file. Content that is not valid UTF-8 is treated as
// opaque binary and returned unchanged.
func Substitute(targetName string, data []byte, m manifest.Manifest,
	packageName string, manager pkgman.PackageManager,
) []byte {
	substituted := false
	for _, name := range substitutedFiles {
		if name == targetName {
			substituted = true
			break
		}
	}
	if !substituted || !utf8.Valid(data) {
		return data
	}

	return []byte(replaceVars(string(data), m, packageName, manager))
}

// replaceVars substitutes every placeholder of content. The order is
// a contract: every step runs over the result of the previous one, so
// manifest variable values may themselves contain the later
// placeholders.
func replaceVars(content string, m manifest.Manifest,
	packageName string, manager pkgman.PackageManager,
) string {
	content = m.ReplaceVars(content)
	content = strings.ReplaceAll(content, "~lib_name~", LibName(packageName))
	content = strings.ReplaceAll(content, "~package_name~", packageName)
	content = strings.ReplaceAll(content, "~pkg_manager_run_command~", manager.RunCmd())

	doubleDash := ""
	if manager.NeedsDoubleDash() {
		doubleDash = " --"
	}

	return strings.ReplaceAll(content, "~double-dash~", doubleDash)
}
