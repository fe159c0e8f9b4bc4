package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cta",
		Short: "Create Tauri App",
		Long:  "Rapidly scaffold out a new Tauri app project",
		Example: `$ cta create my-app --template react-ts --manager pnpm
  $ cta list
  $ cta completion bash`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.AddCommand(
		NewCreateCmd(),
		NewListCmd(),
		NewVersionCmd(),
		NewCompletionCmd(),
	)

	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// Execute root command.
func Execute() {
	if err := NewCmdRoot().Execute(); err != nil {
		log.Fatalf(err.Error())
	}
}
