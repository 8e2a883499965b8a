package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func testWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "bs"), 0755); err != nil {
		t.Fatalf("creating bs dir: %v", err)
	}
	return &Workspace{Root: root, CommandsDir: filepath.Join(root, "bs")}
}

func writeManifest(t *testing.T, ws *Workspace, content string) {
	t.Helper()
	if err := os.WriteFile(ws.ManifestPath(), []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	ws := testWorkspace(t)

	m, err := ws.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Default != "" || m.MinVersion != "" {
		t.Errorf("expected zero-value manifest for missing bs.yaml, got %+v", m)
	}
}

func TestLoadManifestParsesFields(t *testing.T) {
	ws := testWorkspace(t)
	writeManifest(t, ws, `default: build
min_rs_version: "1.2.0"
description: Example workspace
commands:
  build: Compile everything
  publish: Push a release
`)

	m, err := ws.LoadManifest()
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Default != "build" {
		t.Errorf("Default = %q, want %q", m.Default, "build")
	}
	if m.MinVersion != "1.2.0" {
		t.Errorf("MinVersion = %q, want %q", m.MinVersion, "1.2.0")
	}
	if m.Commands["publish"] != "Push a release" {
		t.Errorf("Commands[publish] = %q", m.Commands["publish"])
	}
}

func TestLoadManifestInvalidYAML(t *testing.T) {
	ws := testWorkspace(t)
	writeManifest(t, ws, "default: [unclosed")

	if _, err := ws.LoadManifest(); err == nil {
		t.Fatal("expected parse error for invalid YAML")
	}
}

func TestCheckMinVersion(t *testing.T) {
	tests := []struct {
		name       string
		minVersion string
		current    string
		wantErr    bool
	}{
		{"no requirement", "", "0.1.0", false},
		{"dev build always passes", "99.0.0", "dev", false},
		{"satisfied", "1.0.0", "1.2.3", false},
		{"exactly equal", "1.2.3", "1.2.3", false},
		{"too old", "2.0.0", "1.9.9", true},
		{"v prefix tolerated", "1.0.0", "v1.1.0", false},
		{"garbage current", "1.0.0", "not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{MinVersion: tt.minVersion}
			err := m.CheckMinVersion(tt.current)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMinVersion(%q) error = %v, wantErr %v", tt.current, err, tt.wantErr)
			}
		})
	}
}
