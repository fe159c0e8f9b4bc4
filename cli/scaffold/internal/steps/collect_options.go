package steps

import (
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"github.com/create-tauri-app/cta/cli/pkgman"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/templates"
	"github.com/create-tauri-app/cta/cli/util"
)

const defaultPackageName = "tauri-app"

var packageNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9\-_]*$`)

// validatePackageName checks that name is usable as a package name for
// every supported package manager.
func validatePackageName(name string) error {
	if !packageNameRe.MatchString(name) {
		return fmt.Errorf("package name must start with a letter and may only contain "+
			"letters, digits, `-` and `_`, got %q", name)
	}

	return nil
}

// CollectOptions represents scaffold options collection step: options
// not provided in the command line are requested from the user, or
// take their defaults in silent mode.
type CollectOptions struct{}

// Run collects and validates the scaffold options.
func (CollectOptions) Run(ctx *scaffold_ctx.ScaffoldCtx) error {
	interactive := !ctx.SilentMode && isatty.IsTerminal(os.Stdin.Fd())

	if ctx.PackageName == "" {
		if !interactive {
			ctx.PackageName = defaultPackageName
		} else {
			namePrompt := promptui.Prompt{
				Label:    "Project name",
				Default:  defaultPackageName,
				Validate: validatePackageName,
			}
			name, err := namePrompt.Run()
			if err != nil {
				return err
			}
			ctx.PackageName = name
		}
	}
	if err := validatePackageName(ctx.PackageName); err != nil {
		return util.NewArgError(err.Error())
	}

	if !ctx.ManagerSet {
		if !interactive {
			ctx.Manager = pkgman.Npm
		} else {
			manager, err := chooseManager()
			if err != nil {
				return err
			}
			ctx.Manager = manager
		}
	}

	if !ctx.TemplateSet {
		template := templates.Vanilla
		if interactive {
			var err error
			if template, err = chooseTemplate(ctx.Manager); err != nil {
				return err
			}
		}
		ctx.Template = template
	}

	if !slices.Contains(ctx.Template.PossiblePackageManagers(), ctx.Manager) {
		return util.NewArgError(fmt.Sprintf(
			"the %s template does not support the %s package manager",
			ctx.Template, ctx.Manager))
	}

	return nil
}

// chooseManager shows a menu in terminal to choose the package manager.
func chooseManager() (pkgman.PackageManager, error) {
	managerSelect := promptui.Select{
		Label:        "Choose your package manager",
		Items:        pkgman.All,
		HideSelected: true,
	}
	index, _, err := managerSelect.Run()
	if err != nil {
		return pkgman.Cargo, err
	}

	return pkgman.All[index], nil
}

// chooseTemplate shows menus in terminal to choose the template and,
// if the template has flavor variants for the manager, its flavor.
func chooseTemplate(manager pkgman.PackageManager) (templates.Template, error) {
	var items []string
	var menu []templates.Template
	for _, template := range templates.Menu {
		if slices.Contains(template.PossiblePackageManagers(), manager) {
			menu = append(menu, template)
			items = append(items, template.SelectText())
		}
	}

	templateSelect := promptui.Select{
		Label:        "Choose your UI template",
		Items:        items,
		HideSelected: true,
	}
	index, _, err := templateSelect.Run()
	if err != nil {
		return templates.Vanilla, err
	}
	template := menu[index]

	flavors := template.Flavors(manager)
	if flavors == nil {
		return template, nil
	}

	flavorSelect := promptui.Select{
		Label:        "Choose your UI flavor",
		Items:        flavors,
		HideSelected: true,
	}
	index, _, err = flavorSelect.Run()
	if err != nil {
		return template, err
	}

	return template.WithFlavor(flavors[index]), nil
}
