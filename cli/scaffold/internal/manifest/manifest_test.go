package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifestText = `
# Copyright 2019-2022 Tauri Programme within The Commons Conservancy
# SPDX-License-Identifier: Apache-2.0
# SPDX-License-Identifier: MIT

beforeDevCommand = ~pkg_manager_run_command~ start~double-dash~ --port 1420
beforeBuildCommand = ~pkg_manager_run_command~ build # this comment should be stripped
devPath = http://localhost:1420

[files]
tauri.svg = src/assets/tauri.svg
styles.css = src/styles.css
`

func TestParse(t *testing.T) {
	parsedManifest, err := Parse(testManifestText, false)
	require.NoError(t, err)

	assert.Equal(t, "~pkg_manager_run_command~ start~double-dash~ --port 1420",
		parsedManifest.BeforeDevCommand)
	assert.Equal(t, "~pkg_manager_run_command~ build", parsedManifest.BeforeBuildCommand)
	assert.Equal(t, "http://localhost:1420", parsedManifest.DevPath)
	assert.Equal(t, "", parsedManifest.DistDir)

	require.Equal(t, []FileEntry{
		{Asset: "tauri.svg", Dest: "src/assets/tauri.svg"},
		{Asset: "styles.css", Dest: "src/styles.css"},
	}, parsedManifest.Files)
}

func TestParseMobile(t *testing.T) {
	parsedManifest, err := Parse(testManifestText, true)
	require.NoError(t, err)

	// The dev server must be reachable from a device on the network.
	assert.Equal(t, "http://0.0.0.0:1420", parsedManifest.DevPath)
}

func TestParseInvalidLine(t *testing.T) {
	_, err := Parse("beforeDevCommand\n", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manifest line")
}

func TestReplaceVars(t *testing.T) {
	parsedManifest, err := Parse(testManifestText, false)
	require.NoError(t, err)

	content := `dev: "~fragment_before_dev_command~", dist: "~fragment_dist_dir~"`
	assert.Equal(t,
		`dev: "~pkg_manager_run_command~ start~double-dash~ --port 1420", dist: ""`,
		parsedManifest.ReplaceVars(content))
}
