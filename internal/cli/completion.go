package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rs-build/rs/internal/branding"
	"github.com/rs-build/rs/internal/completion"
)

func init() {
	for _, shell := range completion.Shells {
		rootCmd.AddCommand(completionCommand(shell))
	}
}

// completionCommand builds one :completion-<shell> command. The snippet goes
// to stdout for eval; everything else the CLI prints goes to stderr, so
// `eval "$(rs :completion-bash)"` stays clean.
func completionCommand(shell string) *cobra.Command {
	return &cobra.Command{
		Use:   ":completion-" + shell,
		Short: "Print " + shell + " completion script",
		Long: `Print a ` + shell + ` snippet that registers tab completion for ` + branding.CLIName() + `.
The completions are backed by '` + branding.CLIName() + ` ls', so they always reflect the
current workspace. Add this to your shell init file:

  eval "$(` + branding.CLIName() + ` :completion-` + shell + `)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := completion.Script(shell)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}
}
