package steps

import (
	"fmt"

	"github.com/apex/log"

	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/scaffold/internal/render"
)

// RenderTemplate represents template render step.
type RenderTemplate struct{}

// Run renders the selected template into the project directory.
func (RenderTemplate) Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	log.Infof("Creating %q from the %s template", ctx.PackageName, ctx.Template)

	renderer := render.Renderer{
		Store:    ctx.Store,
		Template: ctx.Template,
	}
	if err := renderer.Render(ctx.TargetDir, ctx.Manager, ctx.PackageName,
		ctx.Alpha, ctx.Mobile); err != nil {
		return fmt.Errorf("failed to render the %s template: %s", ctx.Template, err)
	}

	return nil
}
