// Package render implements the fragment composition engine: it
// decides which fragment files reach the project directory, under
// what name and with what placeholder substitutions applied.
package render

import (
	"slices"
	"strings"

	"github.com/create-tauri-app/cta/cli/fragments"
	"github.com/create-tauri-app/cta/cli/pkgman"
)

// Context carries the per-render inputs driving conditional file
// inclusion.
type Context struct {
	// Manager is the selected package manager.
	Manager pkgman.PackageManager
	// Alpha selects the alpha release channel.
	Alpha bool
	// Mobile selects the mobile targets. It implies Alpha.
	Mobile bool
}

// Decision is the outcome of resolving one fragment file name.
type Decision struct {
	// Include reports whether the file is written at all.
	Include bool
	// Name is the output base name of an included file.
	Name string
}

const (
	conditionalPrefix    = "%("
	conditionalSeparator = ")%"
)

var channelFlags = []string{"stable", "alpha", "mobile"}

// ResolveName decides whether a fragment file with the given base name
// is emitted, and under what name. Conditional names have the form
//
//	%(<flags separated by `-`>)%<file name>
//
// where a flag is either a release channel (stable, alpha, mobile) or
// a package manager identifier. A file is emitted when its channel
// flags match the render channel and its manager flags, if any,
// contain the selected manager.
func ResolveName(name string, ctx Context) Decision {
	switch name {
	case "_gitignore":
		return Decision{Include: true, Name: ".gitignore"}
	case "_Cargo.toml":
		return Decision{Include: true, Name: "Cargo.toml"}
	case fragments.ManifestFileName:
		// Manifest markers never reach the output tree.
		return Decision{}
	}

	if !strings.HasPrefix(name, conditionalPrefix) {
		return Decision{Include: true, Name: name}
	}
	flagList, finalName, found := strings.Cut(
		strings.TrimPrefix(name, conditionalPrefix), conditionalSeparator)
	if !found {
		return Decision{Include: true, Name: name}
	}

	flags := strings.Split(flagList, "-")

	forStable := slices.Contains(flags, "stable")
	forAlpha := slices.Contains(flags, "alpha")
	forMobile := slices.Contains(flags, "mobile")

	// The remaining flags are package manager identifiers.
	var managers []string
	for _, flag := range flags {
		if !slices.Contains(channelFlags, flag) {
			managers = append(managers, flag)
		}
	}

	channelOk := (forStable && !ctx.Alpha) ||
		(forAlpha && ctx.Alpha && !ctx.Mobile) ||
		(forMobile && ctx.Alpha && ctx.Mobile) ||
		(!forStable && !forAlpha && !forMobile)
	managerOk := len(managers) == 0 || slices.Contains(managers, ctx.Manager.String())

	if !channelOk || !managerOk {
		return Decision{}
	}

	if finalName == fragments.ManifestFileName {
		return Decision{}
	}

	return Decision{Include: true, Name: finalName}
}
