package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rs-build/rs/internal/branding"
	"github.com/rs-build/rs/internal/config"
	"github.com/rs-build/rs/internal/registry"
	"github.com/rs-build/rs/internal/runner"
	"github.com/rs-build/rs/internal/ui"
	"github.com/rs-build/rs/internal/workspace"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <command> [args...]",
	Short: branding.Description(),
	Long: branding.CLIName() + ` is a tiny build system that runs scripts in a folder.

  1. Create a ` + branding.CommandsDir() + ` directory in your repository root.

  2. Add commands by dropping executable scripts (with shebangs) into it,
     named after the command. ` + branding.CLIName() + ` publish runs ` + branding.CommandsDir() + `/publish
     (any extension works: publish.sh answers to the same name).

  3. Extra arguments pass straight through:

       ` + branding.CLIName() + ` publish --stage production

     runs

       ` + branding.CommandsDir() + `/publish --stage production

  4. A default command catches names with no matching script. Declare it in
     ` + branding.ManifestFile() + ` ("default: <name>") or drop a ` + branding.CommandsDir() + `/default script; the
     unmatched name is passed as the default's first argument.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDispatch,
	CompletionOptions: cobra.CompletionOptions{
		// The :completion-<shell> commands replace cobra's generator, and
		// the builtin name would shadow a user script called "completion".
		DisableDefaultCmd: true,
	},
}

// exitCodeError carries a dispatched child's exit code through cobra so
// Execute can propagate it unchanged.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code: the dispatched child's code when a script
// ran, 1 on dispatcher errors, 0 otherwise.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()

	// Script flags belong to the script: stop parsing at the first
	// positional so `rs publish --verbose` forwards --verbose untouched.
	rootCmd.Flags().SetInterspersed(false)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintln(os.Stderr, ui.Error(branding.CLIName()+": "+err.Error()))
	return 1
}

func runDispatch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runZeroArgs(cmd)
	}
	return dispatch(cmd, args[0], args[1:])
}

// dispatch resolves name to a script and runs it with rest appended.
func dispatch(cmd *cobra.Command, name string, rest []string) error {
	ws, err := workspace.Resolve()
	if err != nil {
		return err
	}

	m, err := ws.LoadManifest()
	if err != nil {
		return err
	}
	if err := m.CheckMinVersion(buildVersion); err != nil {
		return err
	}

	entries, err := registry.List(ws.CommandsDir)
	if err != nil {
		return err
	}

	entry, ok := registry.Lookup(entries, name)
	forward := rest
	if !ok {
		entry, err = defaultEntry(entries, m)
		if err != nil {
			return unknownCommandError(name, ws, err)
		}
		// The default receives the unmatched name as its first argument,
		// so one script can route several commands.
		forward = append([]string{name}, rest...)
	}

	r := &runner.Runner{}
	code, err := r.Run(cmd.Context(), entry.Path, forward)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}

// runZeroArgs handles a bare `rs`: run the workspace default with no
// arguments if one is defined, otherwise print usage.
func runZeroArgs(cmd *cobra.Command) error {
	ws, err := workspace.Resolve()
	if err != nil {
		return cmd.Help()
	}

	m, err := ws.LoadManifest()
	if err != nil {
		return err
	}

	entries, err := registry.List(ws.CommandsDir)
	if err != nil {
		return err
	}

	entry, err := defaultEntry(entries, m)
	if err != nil {
		return cmd.Help()
	}

	if err := m.CheckMinVersion(buildVersion); err != nil {
		return err
	}

	r := &runner.Runner{}
	code, err := r.Run(cmd.Context(), entry.Path, nil)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}

// defaultEntry resolves the workspace's default command: the bs.yaml
// `default:` key first, then the bs/default script convention.
func defaultEntry(entries []registry.Entry, m *workspace.Manifest) (registry.Entry, error) {
	if m.Default != "" {
		entry, ok := registry.Lookup(entries, m.Default)
		if !ok {
			return registry.Entry{}, fmt.Errorf("default command %q from %s has no script",
				m.Default, branding.ManifestFile())
		}
		return entry, nil
	}

	entry, ok := registry.Lookup(entries, "default")
	if !ok {
		return registry.Entry{}, fmt.Errorf("no default is configured")
	}
	return entry, nil
}

func unknownCommandError(name string, ws *workspace.Workspace, cause error) error {
	hint := ""
	if name == "list" {
		hint = fmt.Sprintf(" Did you mean %q?", branding.CLIName()+" ls")
	}
	return fmt.Errorf("%w %q: no matching script in %s and %s.%s",
		registry.ErrUnknownCommand, name, ws.CommandsDir, cause, hint)
}
