package scaffold_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-tauri-app/cta/cli/fragments"
	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/scaffold"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/templates"
)

func TestRunScaffoldsProject(t *testing.T) {
	store, err := fragments.NewStore()
	require.NoError(t, err)

	ctx := scaffold_ctx.ScaffoldCtx{
		PackageName: "test-app",
		WorkDir:     t.TempDir(),
		SilentMode:  true,
		Template:    templates.VanillaTs,
		TemplateSet: true,
		Manager:     pkgman.Pnpm,
		ManagerSet:  true,
		Store:       store,
	}

	require.NoError(t, scaffold.Run(&ctx))

	targetDir := ctx.TargetDir
	assert.FileExists(t, filepath.Join(targetDir, ".gitignore"))
	assert.FileExists(t, filepath.Join(targetDir, "package.json"))
	assert.FileExists(t, filepath.Join(targetDir, "src-tauri", "Cargo.toml"))
	assert.FileExists(t, filepath.Join(targetDir, "src-tauri", "tauri.conf.json"))
	assert.FileExists(t, filepath.Join(targetDir, "src-tauri", "src", "main.rs"))
	assert.FileExists(t, filepath.Join(targetDir, "src", "assets", "tauri.svg"))
	assert.FileExists(t, filepath.Join(targetDir, "src", "styles.css"))

	packageJson, err := os.ReadFile(filepath.Join(targetDir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(packageJson), `"name": "test-app"`)

	tauriConf, err := os.ReadFile(filepath.Join(targetDir, "src-tauri", "tauri.conf.json"))
	require.NoError(t, err)
	assert.Contains(t, string(tauriConf), "pnpm dev --port 1420")

	// Manifest markers and mobile files never reach the output tree.
	err = filepath.WalkDir(targetDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		assert.NotEqual(t, fragments.ManifestFileName, entry.Name())
		assert.NotContains(t, entry.Name(), "%(")
		return nil
	})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(targetDir, "src-tauri", "src", "lib.rs"))
}

func TestRunIncompatibleOptions(t *testing.T) {
	store, err := fragments.NewStore()
	require.NoError(t, err)

	ctx := scaffold_ctx.ScaffoldCtx{
		PackageName: "test-app",
		WorkDir:     t.TempDir(),
		SilentMode:  true,
		Template:    templates.Leptos,
		TemplateSet: true,
		Manager:     pkgman.Bun,
		ManagerSet:  true,
		Store:       store,
	}

	require.Error(t, scaffold.Run(&ctx))
	assert.NoDirExists(t, filepath.Join(ctx.WorkDir, "test-app"))
}
