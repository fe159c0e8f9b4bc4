package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/templates"
	"github.com/create-tauri-app/cta/cli/util"
)

// NewListCmd shows available templates.
func NewListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, runList())
		},
		Args: cobra.ExactArgs(0),
	}

	return listCmd
}

// runList prints the template catalog as a table.
func runList() error {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.AppendHeader(table.Row{"Template", "Flavors", "Package managers", "Requires"})

	for _, template := range templates.Menu {
		var flavors []string
		for _, flavor := range template.Flavors(pkgman.Npm) {
			flavors = append(flavors, flavor.String())
		}

		var managers []string
		for _, manager := range template.PossiblePackageManagers() {
			managers = append(managers, manager.String())
		}

		var requires []string
		if template.NeedsTauriCli() {
			requires = append(requires, "tauri-cli")
		}
		if template.NeedsTrunk() {
			requires = append(requires, "trunk")
		}
		if template.NeedsWasm32Target() {
			requires = append(requires, "wasm32 target")
		}

		writer.AppendRow(table.Row{
			template.String(),
			strings.Join(flavors, ", "),
			strings.Join(managers, ", "),
			strings.Join(requires, ", "),
		})
	}

	writer.Render()

	return nil
}
