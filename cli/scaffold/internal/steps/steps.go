// Package steps provides a set of handlers for scaffold command chain
// of responsibility.
package steps

import (
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
)

// Step is an interface for single step in scaffold chain.
type Step interface {
	Run(ctx *scaffold_ctx.ScaffoldCtx) error
}
