package steps

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-tauri-app/cta/cli/pkgman"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/templates"
)

func TestPrintFollowUpMessageNode(t *testing.T) {
	var buf bytes.Buffer
	ctx := scaffold_ctx.ScaffoldCtx{
		PackageName: "my-app",
		Template:    templates.ReactTs,
		Manager:     pkgman.Npm,
	}

	require.NoError(t, PrintFollowUpMessage{Writer: &buf}.Run(&ctx))

	out := buf.String()
	assert.Contains(t, out, "cd my-app")
	assert.Contains(t, out, "npm install")
	assert.Contains(t, out, "npm run tauri dev")
	assert.NotContains(t, out, "trunk")
}

func TestPrintFollowUpMessageTrunk(t *testing.T) {
	var buf bytes.Buffer
	ctx := scaffold_ctx.ScaffoldCtx{
		PackageName: "my-app",
		Template:    templates.Yew,
		Manager:     pkgman.Cargo,
	}

	require.NoError(t, PrintFollowUpMessage{Writer: &buf}.Run(&ctx))

	out := buf.String()
	assert.Contains(t, out, "cargo install tauri-cli")
	assert.Contains(t, out, "cargo install trunk")
	assert.Contains(t, out, "rustup target add wasm32-unknown-unknown")
	assert.Contains(t, out, "cargo tauri dev")
	assert.NotContains(t, out, "npm install")
}

func TestPrintFollowUpMessageInstalled(t *testing.T) {
	var buf bytes.Buffer
	ctx := scaffold_ctx.ScaffoldCtx{
		PackageName: "my-app",
		Template:    templates.Svelte,
		Manager:     pkgman.Pnpm,
		Install:     true,
	}

	require.NoError(t, PrintFollowUpMessage{Writer: &buf}.Run(&ctx))

	// Dependencies are already installed, no install hint.
	assert.NotContains(t, buf.String(), "pnpm install")
	assert.Contains(t, buf.String(), "pnpm tauri dev")
}
