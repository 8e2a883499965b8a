package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rs-build/rs/internal/branding"
	"github.com/rs-build/rs/internal/registry"
	"github.com/rs-build/rs/internal/workspace"
)

var (
	lsLong bool
	lsJSON bool
)

var lsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{":ls"},
	Short:   "List available commands",
	Long: `List the commands discovered in the workspace's ` + branding.CommandsDir() + `/ directory.

The default output is one name per line, sorted — the same list shell
completion offers. --long adds paths (executables marked with *) and any
descriptions from ` + branding.ManifestFile() + `.`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsLong, "long", false, "Show paths, executable markers, and descriptions")
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(lsCmd)
}

// lsEntry represents a discovered command for display.
type lsEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Executable bool   `json:"executable"`
	Desc       string `json:"description,omitempty"`
}

func runLs(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Resolve()
	if err != nil {
		return err
	}

	entries, err := registry.List(ws.CommandsDir)
	if err != nil {
		return err
	}

	if !lsLong && !lsJSON {
		for _, name := range registry.Names(entries) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	m, err := ws.LoadManifest()
	if err != nil {
		return err
	}

	var out []lsEntry
	for _, e := range entries {
		name := e.InvocableName()
		out = append(out, lsEntry{
			Name:       name,
			Path:       e.Path,
			Executable: e.Executable,
			Desc:       m.Commands[name],
		})
	}

	if lsJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATH\tDESCRIPTION")
	for _, e := range out {
		path, relErr := filepath.Rel(ws.Root, e.Path)
		if relErr != nil {
			path = e.Path
		}
		marker := ""
		if e.Executable {
			marker = "*"
		}
		desc := e.Desc
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s%s\t%s\n", e.Name, path, marker, desc)
	}
	return w.Flush()
}
