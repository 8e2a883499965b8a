// Package branding provides compile-time identity values for the CLI.
//
// Everything that names the tool — the command itself, the conventional
// commands directory, env var prefixes — goes through here, so a fork can
// rename the whole surface by editing branding.yaml and rebuilding.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	CommandsDir  string `yaml:"commands_dir"`
	ManifestFile string `yaml:"manifest_file"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "rs",
			DisplayName:  "rs",
			Description:  "Tiny build system that runs scripts in a folder",
			CommandsDir:  "bs",
			ManifestFile: "bs.yaml",
			HomeDir:      ".rs",
			EnvPrefix:    "RS",
			GoModule:     "github.com/rs-build/rs",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rs").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// CommandsDir returns the conventional commands directory name (e.g., "bs").
func CommandsDir() string { load(); return defaults.CommandsDir }

// ManifestFile returns the workspace manifest filename (e.g., "bs.yaml").
func ManifestFile() string { load(); return defaults.ManifestFile }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rs").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "RS_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
