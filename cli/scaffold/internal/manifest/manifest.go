// Package manifest parses the _cta_manifest_ marker file of a
// fragment zone.
package manifest

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FileEntry is one extra file declaration of the [files] section:
// an asset name from the _assets_ zone and its destination path
// relative to the project directory.
type FileEntry struct {
	Asset string
	Dest  string
}

// Manifest is a parsed fragment manifest.
type Manifest struct {
	// BeforeDevCommand is the command starting the frontend dev server.
	BeforeDevCommand string `mapstructure:"beforeDevCommand"`
	// BeforeBuildCommand is the command building the frontend.
	BeforeBuildCommand string `mapstructure:"beforeBuildCommand"`
	// DevPath is the URL of the frontend dev server.
	DevPath string `mapstructure:"devPath"`
	// DistDir is the directory of built frontend assets.
	DistDir string `mapstructure:"distDir"`
	// Files contains the extra file declarations in manifest order.
	Files []FileEntry `mapstructure:"-"`
}

const filesSection = "[files]"

// Parse parses manifest text. A `#` starts a comment, empty lines are
// skipped, everything before the [files] section is a `key = value`
// variable definition and everything after it an `asset = dest` extra
// file declaration. For mobile scaffolding the dev server is bound to
// all interfaces so that a device on the network can reach it.
func Parse(text string, mobile bool) (Manifest, error) {
	var manifest Manifest

	vars := map[string]interface{}{}
	inFiles := false
	for _, line := range strings.Split(text, "\n") {
		if before, _, found := strings.Cut(line, "#"); found {
			line = before
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == filesSection {
			inFiles = true
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return manifest, fmt.Errorf("invalid manifest line %q: expected key = value", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if inFiles {
			manifest.Files = append(manifest.Files, FileEntry{Asset: key, Dest: value})
		} else {
			vars[key] = value
		}
	}

	if err := mapstructure.Decode(vars, &manifest); err != nil {
		return manifest, fmt.Errorf("failed to decode manifest: %s", err)
	}

	if mobile {
		manifest.DevPath = strings.Replace(manifest.DevPath, "localhost", "0.0.0.0", 1)
	}

	return manifest, nil
}

// ReplaceVars substitutes the manifest variable placeholders in
// content. Placeholders of unset variables are replaced with the
// empty string.
func (m Manifest) ReplaceVars(content string) string {
	replacer := strings.NewReplacer(
		"~fragment_before_dev_command~", m.BeforeDevCommand,
		"~fragment_before_build_command~", m.BeforeBuildCommand,
		"~fragment_dev_path~", m.DevPath,
		"~fragment_dist_dir~", m.DistDir,
	)

	return replacer.Replace(content)
}
