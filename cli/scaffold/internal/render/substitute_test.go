package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/scaffold/internal/manifest"
)

const testManifestText = `
beforeDevCommand = ~pkg_manager_run_command~ start~double-dash~ --port 1420
beforeBuildCommand = ~pkg_manager_run_command~ build
devPath = http://localhost:1420

[files]
tauri.svg = src/assets/tauri.svg
styles.css = src/styles.css
`

const testConfigContent = `{
    "build": {
        "beforeDevCommand": "~fragment_before_dev_command~",
        "beforeBuildCommand": "~fragment_before_build_command~",
        "devPath": "~fragment_dev_path~",
        "distDir": "~fragment_dist_dir~"
    },
}`

func TestSubstituteOrdering(t *testing.T) {
	parsedManifest, err := manifest.Parse(testManifestText, false)
	require.NoError(t, err)

	// Manifest variable values contain engine placeholders themselves
	// and get substituted on the following steps.
	result := Substitute("tauri.conf.json", []byte(testConfigContent),
		parsedManifest, "cta-app", pkgman.Npm)
	assert.Equal(t, `{
    "build": {
        "beforeDevCommand": "npm run start -- --port 1420",
        "beforeBuildCommand": "npm run build",
        "devPath": "http://localhost:1420",
        "distDir": ""
    },
}`, string(result))

	result = Substitute("tauri.conf.json", []byte(testConfigContent),
		parsedManifest, "cta-app", pkgman.Pnpm)
	assert.Equal(t, `{
    "build": {
        "beforeDevCommand": "pnpm start --port 1420",
        "beforeBuildCommand": "pnpm build",
        "devPath": "http://localhost:1420",
        "distDir": ""
    },
}`, string(result))
}

func TestSubstitutePackageAndLibName(t *testing.T) {
	content := `name = "~package_name~"` + "\n" + `lib = "~lib_name~"`

	result := Substitute("Cargo.toml", []byte(content), manifest.Manifest{},
		"my-tauri-app", pkgman.Cargo)
	assert.Equal(t, `name = "my-tauri-app"`+"\n"+`lib = "my_tauri_app_lib"`,
		string(result))
}

func TestSubstituteNotAllowListed(t *testing.T) {
	content := []byte("~package_name~")

	result := Substitute("main.js", content, manifest.Manifest{}, "app", pkgman.Npm)
	assert.Equal(t, content, result)
}

func TestSubstituteBinaryPassThrough(t *testing.T) {
	// Not valid UTF-8: copied byte for byte even for an allow-listed
	// file name.
	content := []byte{0x89, 0x50, 0x4e, 0x47, 0xff, 0xfe, 0x7e}

	result := Substitute("package.json", content, manifest.Manifest{}, "app", pkgman.Npm)
	assert.Equal(t, content, result)
}

func TestLibName(t *testing.T) {
	assert.Equal(t, "cta_app_lib", LibName("cta-app"))
	assert.Equal(t, "app_lib", LibName("app"))
}
