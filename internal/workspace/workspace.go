package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs-build/rs/internal/branding"
)

// ErrNotFound is returned when no ancestor of the starting directory
// contains a commands directory.
var ErrNotFound = errors.New("workspace not found")

// Workspace is a resolved project root and its commands directory.
type Workspace struct {
	// Root is the directory containing the bs/ subdirectory.
	Root string
	// CommandsDir is the absolute path to bs/ itself.
	CommandsDir string
}

// ManifestPath returns the path where the workspace manifest (bs.yaml)
// would live. The file is optional; callers stat it themselves.
func (w *Workspace) ManifestPath() string {
	return filepath.Join(w.Root, branding.ManifestFile())
}

// Resolve walks upward from the current working directory until it finds a
// directory containing bs/, honoring the RS_ROOT env override first.
func Resolve() (*Workspace, error) {
	if root := os.Getenv(branding.EnvVar("ROOT")); root != "" {
		return at(root)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}
	return ResolveFrom(wd)
}

// ResolveFrom walks upward from start (inclusive) until a directory
// containing the commands subdirectory is found. The ascent stops at the
// filesystem root, where the search fails with ErrNotFound.
func ResolveFrom(start string) (*Workspace, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, branding.CommandsDir())
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Workspace{Root: dir, CommandsDir: candidate}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s directory at or above %s: %w",
				branding.CommandsDir(), start, ErrNotFound)
		}
		dir = parent
	}
}

// at validates an explicitly provided root (RS_ROOT).
func at(root string) (*Workspace, error) {
	candidate := filepath.Join(root, branding.CommandsDir())
	info, err := os.Stat(candidate)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s=%s has no %s directory: %w",
			branding.EnvVar("ROOT"), root, branding.CommandsDir(), ErrNotFound)
	}
	return &Workspace{Root: root, CommandsDir: candidate}, nil
}
