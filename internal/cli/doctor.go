package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rs-build/rs/internal/branding"
	"github.com/rs-build/rs/internal/registry"
	"github.com/rs-build/rs/internal/workspace"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the current workspace",
	Long: `Run diagnostic checks: workspace resolution, ` + branding.ManifestFile() + ` schema
validation, version requirements, and script permissions.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ws, err := workspace.Resolve()
	if err != nil {
		fmt.Fprintf(out, "[FAIL] workspace: %v\n", err)
		return fmt.Errorf("no workspace: create a %s directory in your repository root", branding.CommandsDir())
	}
	fmt.Fprintf(out, "[ OK ] workspace root: %s\n", ws.Root)

	checkManifest(out, ws)
	checkScripts(out, ws)
	return nil
}

func checkManifest(out io.Writer, ws *workspace.Workspace) {
	path := ws.ManifestPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "[INFO] no %s (optional)\n", branding.ManifestFile())
		return
	}

	result, err := workspace.ValidateManifestFile(path)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] %s: %v\n", branding.ManifestFile(), err)
		return
	}
	if !result.Valid {
		fmt.Fprintf(out, "[FAIL] %s: %d schema issue(s):\n", branding.ManifestFile(), len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "         - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "         - %s\n", issue.Message)
			}
		}
		return
	}
	fmt.Fprintf(out, "[ OK ] %s is valid\n", branding.ManifestFile())

	m, err := ws.LoadManifest()
	if err != nil {
		fmt.Fprintf(out, "[FAIL] %s: %v\n", branding.ManifestFile(), err)
		return
	}
	if err := m.CheckMinVersion(buildVersion); err != nil {
		fmt.Fprintf(out, "[FAIL] version: %v\n", err)
	} else if m.MinVersion != "" {
		fmt.Fprintf(out, "[ OK ] version %s satisfies min_rs_version %s\n", buildVersion, m.MinVersion)
	}
}

func checkScripts(out io.Writer, ws *workspace.Workspace) {
	entries, err := registry.List(ws.CommandsDir)
	if err != nil {
		fmt.Fprintf(out, "[FAIL] commands: %v\n", err)
		return
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "[WARN] %s/ contains no scripts\n", branding.CommandsDir())
		return
	}

	nonExec := 0
	for _, e := range entries {
		if !e.Executable {
			nonExec++
		}
	}
	if nonExec > 0 {
		fmt.Fprintf(out, "[WARN] %d of %d scripts not executable (run `%s :x`)\n",
			nonExec, len(entries), branding.CLIName())
		return
	}
	fmt.Fprintf(out, "[ OK ] %d scripts, all executable\n", len(entries))
}
