package cmd

import (
	"github.com/spf13/cobra"

	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/scaffold"
	scaffold_ctx "github.com/create-tauri-app/cta/cli/scaffold/context"
	"github.com/create-tauri-app/cta/cli/templates"
	"github.com/create-tauri-app/cta/cli/util"
	"github.com/create-tauri-app/cta/cli/version"
)

var (
	templateName       string
	managerName        string
	alphaChannel       bool
	mobileTarget       bool
	forceMode          bool
	nonInteractiveMode bool
	installDeps        bool
	verboseMode        bool
)

// NewCreateCmd creates a project from a template.
func NewCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create [PROJECT_NAME] [flags]",
		Short: "Create a new Tauri project from a template",
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, runCreate(args))
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Create a new Tauri project from a template.

Options not provided in the command line are requested interactively.`,
		Example: `
# Create a project, choosing everything interactively.

    $ cta create

# Create a React + TypeScript project named my-app using pnpm.

    $ cta create my-app --template react-ts --manager pnpm

# Create a Yew project from the alpha channel, without any questions.

    $ cta create my-app -t yew -m cargo --alpha -y`,
	}

	createCmd.Flags().StringVarP(&templateName, "template", "t", "",
		"Template to scaffold from")
	createCmd.Flags().StringVarP(&managerName, "manager", "m", "",
		"Package manager to use")
	createCmd.Flags().BoolVar(&alphaChannel, "alpha", version.IsPreRelease(),
		"Scaffold from the alpha channel")
	createCmd.Flags().BoolVar(&mobileTarget, "mobile", false,
		"Scaffold with mobile targets (implies --alpha)")
	createCmd.Flags().BoolVarP(&forceMode, "force", "f", false,
		"Replace the project directory if it is not empty")
	createCmd.Flags().BoolVarP(&nonInteractiveMode, "yes", "y", false,
		"Non-interactive mode, missing options take their defaults")
	createCmd.Flags().BoolVar(&installDeps, "install", false,
		"Install project dependencies after scaffolding")
	createCmd.Flags().BoolVarP(&verboseMode, "verbose", "V", false,
		"Show package manager output")

	createCmd.RegisterFlagCompletionFunc("template", templateCompletion)
	createCmd.RegisterFlagCompletionFunc("manager", managerCompletion)

	return createCmd
}

// templateCompletion returns valid values of the --template flag.
func templateCompletion(cmd *cobra.Command, args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(templates.All))
	for _, template := range templates.All {
		names = append(names, template.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// managerCompletion returns valid values of the --manager flag.
func managerCompletion(cmd *cobra.Command, args []string,
	toComplete string,
) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(pkgman.All))
	for _, manager := range pkgman.All {
		names = append(names, manager.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// runCreate scaffolds a project from the command line options.
func runCreate(args []string) error {
	scaffoldCtx := scaffold_ctx.ScaffoldCtx{
		Alpha:      alphaChannel || mobileTarget,
		Mobile:     mobileTarget,
		ForceMode:  forceMode,
		SilentMode: nonInteractiveMode,
		Install:    installDeps,
		Verbose:    verboseMode,
	}

	if templateName != "" {
		template, err := templates.Parse(templateName)
		if err != nil {
			return util.NewArgError(err.Error())
		}
		scaffoldCtx.Template = template
		scaffoldCtx.TemplateSet = true
	}

	if managerName != "" {
		manager, err := pkgman.Parse(managerName)
		if err != nil {
			return util.NewArgError(err.Error())
		}
		scaffoldCtx.Manager = manager
		scaffoldCtx.ManagerSet = true
	}

	if err := scaffold.FillCtx(&scaffoldCtx, args); err != nil {
		return err
	}

	return scaffold.Run(&scaffoldCtx)
}
