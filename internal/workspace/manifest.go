package workspace

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Manifest is the optional bs.yaml at the workspace root. Everything in it
// is advisory except min_rs_version, which gates dispatch.
type Manifest struct {
	// Default names the command run when the requested one does not match.
	// The bs/default script convention takes over when this is empty.
	Default string `yaml:"default,omitempty"`
	// MinVersion is the minimum rs version this workspace requires.
	MinVersion string `yaml:"min_rs_version,omitempty"`
	// Description is shown in diagnostics.
	Description string `yaml:"description,omitempty"`
	// Commands maps command names to one-line descriptions for `rs ls --long`.
	Commands map[string]string `yaml:"commands,omitempty"`
}

// LoadManifest reads and parses the workspace's bs.yaml. A missing file is
// not an error: the zero-value manifest is returned so callers don't branch
// on nil.
func (w *Workspace) LoadManifest() (*Manifest, error) {
	data, err := os.ReadFile(w.ManifestPath())
	if os.IsNotExist(err) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", w.ManifestPath(), err)
	}
	return &m, nil
}

// CheckMinVersion verifies that the running rs version satisfies the
// manifest's min_rs_version. Development builds ("dev") always pass so
// local builds can drive any workspace.
func (m *Manifest) CheckMinVersion(current string) error {
	if m.MinVersion == "" || current == "dev" {
		return nil
	}

	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return fmt.Errorf("parsing rs version %q: %w", current, err)
	}
	mv, err := semver.NewVersion(strings.TrimPrefix(m.MinVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing min_rs_version %q: %w", m.MinVersion, err)
	}

	if cv.LessThan(mv) {
		return fmt.Errorf("this workspace requires rs >= %s (running %s)", m.MinVersion, current)
	}
	return nil
}
