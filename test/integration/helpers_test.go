//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// setupWorkspace creates an isolated workspace with a bs/ directory and
// returns its root. RS_ROOT is pointed at it so resolution is sandboxed.
func setupWorkspace(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bs"), 0755); err != nil {
		t.Fatalf("creating bs dir: %v", err)
	}
	t.Setenv("RS_ROOT", root)
	return root
}

// writeScript drops a shell script into the workspace's bs/ directory.
func writeScript(t *testing.T, root, name, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(root, "bs", name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode); err != nil {
		t.Fatalf("writing script %s: %v", name, err)
	}
	return path
}

// writeManifest drops a bs.yaml at the workspace root.
func writeManifest(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, "bs.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing bs.yaml: %v", err)
	}
}
