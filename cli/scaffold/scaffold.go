// Package scaffold creates a new project directory from an embedded
// template.
package scaffold

import (
	"fmt"
	"os"

	"github.com/create-tauri-app/cta/cli/fragments"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/scaffold/internal/steps"
)

// FillCtx fills scaffold context.
func FillCtx(ctx *scaffold_ctx.ScaffoldCtx, args []string) error {
	if len(args) >= 1 {
		ctx.PackageName = args[0]
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	ctx.WorkDir = workingDir

	store, err := fragments.NewStore()
	if err != nil {
		return err
	}
	ctx.Store = store

	return nil
}

// Run scaffolds a project from a template.
func Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	if ctx.Store == nil {
		return fmt.Errorf("fragment store is not initialized")
	}

	stepsChain := []steps.Step{
		steps.CollectOptions{},
		steps.CheckDestination{Reader: os.Stdin},
		steps.RenderTemplate{},
		steps.InstallDeps{},
		steps.PrintFollowUpMessage{Writer: os.Stdout},
	}

	for _, step := range stepsChain {
		if err := step.Run(ctx); err != nil {
			return err
		}
	}

	return nil
}
