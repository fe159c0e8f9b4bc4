package steps

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/util"
)

// CheckDestination represents the project directory check step.
type CheckDestination struct {
	// Reader is used to read the replace confirmation answer.
	Reader io.Reader
}

// Run resolves the project directory and makes sure it can be rendered
// into. A non-empty directory is replaced after confirmation, or
// unconditionally in force mode.
func (checkDestinationStep CheckDestination) Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	ctx.TargetDir = filepath.Join(ctx.WorkDir, ctx.PackageName)

	empty, err := util.IsDirEmpty(ctx.TargetDir)
	if err != nil {
		return fmt.Errorf("failed to check directory %q: %s", ctx.TargetDir, err)
	}

	if !empty {
		if !ctx.ForceMode {
			if ctx.SilentMode {
				return fmt.Errorf("directory %q is not empty. Use --force to replace it",
					ctx.TargetDir)
			}

			confirmed, err := util.AskConfirm(checkDestinationStep.Reader,
				fmt.Sprintf("Directory %q is not empty. Replace its content?", ctx.TargetDir))
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("scaffolding was cancelled")
			}
		}

		if err := os.RemoveAll(ctx.TargetDir); err != nil {
			return fmt.Errorf("failed to remove directory %q: %s", ctx.TargetDir, err)
		}
	}

	if err := os.MkdirAll(ctx.TargetDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %s", ctx.TargetDir, err)
	}

	return nil
}
