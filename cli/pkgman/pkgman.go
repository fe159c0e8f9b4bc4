// Package pkgman defines the closed set of package managers a project
// can be scaffolded for.
package pkgman

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/fatih/color"

	"github.com/create-tauri-app/cta/cli/util"
)

// PackageManager is a package manager used to install and run the
// generated project.
type PackageManager uint16

const (
	Cargo PackageManager = iota
	Pnpm
	Yarn
	Npm
	Bun
)

// All contains every known package manager.
var All = []PackageManager{Cargo, Pnpm, Yarn, Npm, Bun}

// Node contains the JS-ecosystem package managers.
var Node = []PackageManager{Pnpm, Yarn, Npm, Bun}

// String returns the display identifier of the package manager. It is
// also the identifier used in conditional fragment file names.
func (p PackageManager) String() string {
	switch p {
	case Cargo:
		return "cargo"
	case Pnpm:
		return "pnpm"
	case Yarn:
		return "yarn"
	case Npm:
		return "npm"
	case Bun:
		return "bun"
	}

	return "unknown"
}

// RunCmd returns the command used to run scripts of the generated
// project. It replaces the ~pkg_manager_run_command~ placeholder.
func (p PackageManager) RunCmd() string {
	switch p {
	case Cargo:
		return "cargo"
	case Pnpm:
		return "pnpm"
	case Yarn:
		return "yarn"
	case Npm:
		return "npm run"
	case Bun:
		return "bun run"
	}

	return ""
}

// NeedsDoubleDash reports whether the manager requires a literal " --"
// separator before arguments passed through to a script.
func (p PackageManager) NeedsDoubleDash() bool {
	return p == Npm
}

// InstallArgs returns the command line to install project dependencies.
func (p PackageManager) InstallArgs() []string {
	switch p {
	case Cargo:
		return []string{"cargo", "fetch"}
	case Yarn:
		return []string{"yarn"}
	default:
		return []string{p.String(), "install"}
	}
}

// Install fetches project dependencies in projectDir.
// If showOutput is false, a spinner is shown instead of the output.
func (p PackageManager) Install(projectDir string, showOutput bool) error {
	args := p.InstallArgs()
	return util.RunCommand(exec.Command(args[0], args[1:]...), projectDir, showOutput)
}

// Parse converts a display identifier to a PackageManager.
func Parse(s string) (PackageManager, error) {
	for _, manager := range All {
		if s == manager.String() {
			return manager, nil
		}
	}

	valid := make([]string, 0, len(All))
	for _, manager := range All {
		valid = append(valid, color.GreenString(manager.String()))
	}

	return Cargo, fmt.Errorf("%s is not a valid package manager. Valid package managers are [%s]",
		color.YellowString(s), strings.Join(valid, ", "))
}
