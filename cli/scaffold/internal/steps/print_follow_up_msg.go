package steps

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/create-tauri-app/cta/cli/pkgman"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/util"
)

// PrintFollowUpMessage represents the follow-up message step.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// Run prints what to do next with the created project.
func (printFollowUpMsgStep PrintFollowUpMessage) Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	out := printFollowUpMsgStep.Writer

	fmt.Fprintf(out, "\nPlease follow %s to install the needed prerequisites, "+
		"if you haven't already.\n",
		util.Bold("https://tauri.app/v1/guides/getting-started/prerequisites"))

	extras := requiredExtras(ctx)
	if len(extras) != 0 {
		fmt.Fprintf(out, "\nYou also need to install:\n")
		for i, extra := range extras {
			fmt.Fprintf(out, "    %d. %s\n", i+1, extra)
		}
	}

	fmt.Fprintf(out, "\nDone. Now run:\n")
	fmt.Fprintf(out, "    cd %s\n", ctx.PackageName)
	if !ctx.Install && slices.Contains(pkgman.Node, ctx.Manager) {
		fmt.Fprintf(out, "    %s\n", installCommand(ctx.Manager))
	}
	fmt.Fprintf(out, "    %s tauri dev\n\n", ctx.Manager.RunCmd())

	return nil
}

// requiredExtras lists the toolchain pieces the template needs beyond
// the package manager itself.
func requiredExtras(ctx *scaffold_ctx.ScaffoldCtx) []string {
	var extras []string
	if ctx.Template.NeedsTauriCli() && ctx.Manager == pkgman.Cargo {
		extras = append(extras, fmt.Sprintf("tauri-cli (%s)",
			util.Bold("cargo install tauri-cli")))
	}
	if ctx.Template.NeedsTrunk() {
		extras = append(extras, fmt.Sprintf("trunk (%s)",
			util.Bold("cargo install trunk")))
	}
	if ctx.Template.NeedsWasm32Target() {
		extras = append(extras, fmt.Sprintf("wasm32 target (%s)",
			util.Bold("rustup target add wasm32-unknown-unknown")))
	}

	return extras
}

func installCommand(manager pkgman.PackageManager) string {
	return strings.Join(manager.InstallArgs(), " ")
}
