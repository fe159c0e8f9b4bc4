package steps

import (
	"fmt"

	"github.com/apex/log"

	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
)

// InstallDeps represents dependencies installation step.
type InstallDeps struct{}

// Run installs project dependencies with the selected package manager.
func (InstallDeps) Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	if !ctx.Install {
		return nil
	}

	log.Infof("Installing dependencies with %s", ctx.Manager)
	if err := ctx.Manager.Install(ctx.TargetDir, ctx.Verbose); err != nil {
		return fmt.Errorf("failed to install dependencies: %s", err)
	}

	return nil
}
