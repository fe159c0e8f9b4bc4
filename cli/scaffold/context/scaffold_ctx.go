package scaffold_ctx

import (
	"github.com/create-tauri-app/cta/cli/fragments"
	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/templates"
)

// ScaffoldCtx contains information for scaffolding a project from a
// template.
type ScaffoldCtx struct {
	// PackageName is the name of the project to create.
	PackageName string
	// WorkDir is the cta launch working directory.
	WorkDir string
	// TargetDir is the project directory to render into.
	TargetDir string
	// Template is the selected template.
	Template templates.Template
	// TemplateSet reports whether a template was provided in the
	// command line.
	TemplateSet bool
	// Manager is the selected package manager.
	Manager pkgman.PackageManager
	// ManagerSet reports whether a package manager was provided in
	// the command line.
	ManagerSet bool
	// Alpha selects the alpha release channel.
	Alpha bool
	// Mobile selects the mobile targets.
	Mobile bool
	// ForceMode - if flag is set, replace the existing project directory.
	ForceMode bool
	// SilentMode if set, disables user interaction. Missing options
	// take their defaults.
	SilentMode bool
	// Install if set, project dependencies are installed after
	// rendering.
	Install bool
	// Verbose if set, package manager output is shown.
	Verbose bool
	// Store is the fragment store to render from.
	Store fragments.Store
}
