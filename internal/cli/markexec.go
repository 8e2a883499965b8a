package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rs-build/rs/internal/branding"
	"github.com/rs-build/rs/internal/platform"
	"github.com/rs-build/rs/internal/registry"
	"github.com/rs-build/rs/internal/workspace"
)

var markExecCmd = &cobra.Command{
	Use:   ":x",
	Short: "Mark all discovered scripts executable",
	Long: `Set the executable permission bits on every script in the workspace's
` + branding.CommandsDir() + `/ directory. Already-executable scripts are left as they are.`,
	Args: cobra.NoArgs,
	RunE: runMarkExec,
}

func init() {
	rootCmd.AddCommand(markExecCmd)
}

func runMarkExec(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Resolve()
	if err != nil {
		return err
	}

	entries, err := registry.List(ws.CommandsDir)
	if err != nil {
		return err
	}

	marked := 0
	for _, e := range entries {
		if e.Executable {
			continue
		}
		if err := platform.MarkExecutable(e.Path); err != nil {
			return fmt.Errorf("marking %s executable: %w", e.Path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "marked %s\n", e.Path)
		marked++
	}

	if marked == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "all %d scripts already executable\n", len(entries))
	}
	return nil
}
