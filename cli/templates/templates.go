// Package templates defines the closed catalog of project templates:
// their identifiers, language flavors, package manager compatibility
// and toolchain requirements.
package templates

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/create-tauri-app/cta/cli/pkgman"
)

// Template is one variant of the catalog.
type Template uint16

const (
	Vanilla Template = iota
	VanillaTs
	Vue
	VueTs
	Svelte
	SvelteTs
	React
	ReactTs
	Solid
	SolidTs
	Yew
	Leptos
	Sycamore
	Angular
	Preact
	PreactTs
)

// All contains every template variant, flavored ones included.
var All = []Template{
	Vanilla,
	VanillaTs,
	Vue,
	VueTs,
	Svelte,
	SvelteTs,
	React,
	ReactTs,
	Solid,
	SolidTs,
	Yew,
	Leptos,
	Sycamore,
	Angular,
	Preact,
	PreactTs,
}

// Menu contains the templates shown in the interactive selection menu.
// Flavored variants are reached through flavor selection instead.
var Menu = []Template{
	Vanilla,
	Vue,
	Svelte,
	React,
	Solid,
	Yew,
	Leptos,
	Sycamore,
	Angular,
	Preact,
}

// String returns the canonical identifier of the template. It is also
// the name of its fragment zone in the asset store.
func (t Template) String() string {
	switch t {
	case Vanilla:
		return "vanilla"
	case VanillaTs:
		return "vanilla-ts"
	case Vue:
		return "vue"
	case VueTs:
		return "vue-ts"
	case Svelte:
		return "svelte"
	case SvelteTs:
		return "svelte-ts"
	case React:
		return "react"
	case ReactTs:
		return "react-ts"
	case Solid:
		return "solid"
	case SolidTs:
		return "solid-ts"
	case Yew:
		return "yew"
	case Leptos:
		return "leptos"
	case Sycamore:
		return "sycamore"
	case Angular:
		return "angular"
	case Preact:
		return "preact"
	case PreactTs:
		return "preact-ts"
	}

	return "unknown"
}

// SelectText returns the label shown in the interactive selection menu.
// It must only be called on Menu templates.
func (t Template) SelectText() string {
	switch t {
	case Vanilla:
		return "Vanilla"
	case Vue:
		return "Vue - (https://vuejs.org)"
	case Svelte:
		return "Svelte - (https://svelte.dev/)"
	case React:
		return "React - (https://reactjs.org/)"
	case Solid:
		return "Solid - (https://www.solidjs.com/)"
	case Yew:
		return "Yew - (https://yew.rs/)"
	case Leptos:
		return "Leptos - (https://github.com/leptos-rs/leptos)"
	case Sycamore:
		return "Sycamore - (https://sycamore-rs.netlify.app/)"
	case Angular:
		return "Angular - (https://angular.io/)"
	case Preact:
		return "Preact - (https://preactjs.com/)"
	}

	panic(fmt.Sprintf("no menu label for template %q", t))
}

// Flavors returns the language flavors available for the template, or
// nil if the template has no flavor variants. Flavors require a JS
// build step, so there are none when scaffolding for cargo.
func (t Template) Flavors(manager pkgman.PackageManager) []Flavor {
	switch t {
	case Vanilla:
		if manager == pkgman.Cargo {
			return nil
		}
		return []Flavor{TypeScript, JavaScript}
	case Vue, Svelte, React, Solid, Preact:
		return []Flavor{TypeScript, JavaScript}
	}

	return nil
}

// WithFlavor returns the flavor-specific variant of the template.
// Templates without such a variant are returned unchanged.
func (t Template) WithFlavor(flavor Flavor) Template {
	if flavor != TypeScript {
		return t
	}

	switch t {
	case Vanilla:
		return VanillaTs
	case Vue:
		return VueTs
	case Svelte:
		return SvelteTs
	case React:
		return ReactTs
	case Solid:
		return SolidTs
	case Preact:
		return PreactTs
	}

	return t
}

// WithoutFlavor strips a flavor suffix back to the base template.
func (t Template) WithoutFlavor() Template {
	switch t {
	case VanillaTs:
		return Vanilla
	case VueTs:
		return Vue
	case SvelteTs:
		return Svelte
	case ReactTs:
		return React
	case SolidTs:
		return Solid
	case PreactTs:
		return Preact
	}

	return t
}

// PossiblePackageManagers returns the package managers the template is
// compatible with.
func (t Template) PossiblePackageManagers() []pkgman.PackageManager {
	switch t {
	case Vanilla:
		return pkgman.All
	case Yew, Leptos, Sycamore:
		return []pkgman.PackageManager{pkgman.Cargo}
	}

	return pkgman.Node
}

// NeedsTrunk reports whether the template is built with the trunk
// WASM bundler.
func (t Template) NeedsTrunk() bool {
	switch t {
	case Sycamore, Yew, Leptos:
		return true
	}
	return false
}

// NeedsTauriCli reports whether the template requires the tauri-cli
// cargo plugin.
func (t Template) NeedsTauriCli() bool {
	switch t {
	case Sycamore, Yew, Leptos, Vanilla:
		return true
	}
	return false
}

// NeedsWasm32Target reports whether the template requires the
// wasm32-unknown-unknown rust target.
func (t Template) NeedsWasm32Target() bool {
	switch t {
	case Sycamore, Yew, Leptos:
		return true
	}
	return false
}

// Parse converts a canonical identifier to a Template.
func Parse(s string) (Template, error) {
	for _, template := range All {
		if s == template.String() {
			return template, nil
		}
	}

	valid := make([]string, 0, len(All))
	for _, template := range All {
		valid = append(valid, color.GreenString(template.String()))
	}

	return Vanilla, fmt.Errorf("%s is not a valid template. Valid templates are [%s]",
		color.YellowString(s), strings.Join(valid, ", "))
}
