package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/create-tauri-app/cta/cli/util"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, runCompletion(cmd, args[0]))
		},
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(cta completion bash)`,
	}

	return completionCmd
}

// runCompletion generates the completion script for the shell.
func runCompletion(cmd *cobra.Command, shell string) error {
	switch shell {
	case shellBash:
		return cmd.Root().GenBashCompletionV2(os.Stdout, true)
	case shellZsh:
		return cmd.Root().GenZshCompletion(os.Stdout)
	case shellFish:
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	}

	return fmt.Errorf("specified shell type is not supported: %s", shell)
}
