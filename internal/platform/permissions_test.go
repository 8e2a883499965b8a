package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestMarkExecutableAddsBits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "script")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	if err := MarkExecutable(path); err != nil {
		t.Fatalf("MarkExecutable: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("mode = %v, want execute bits set", info.Mode())
	}
	// Read bits mirror into execute bits: 0644 → 0755.
	if got := info.Mode().Perm(); got != 0755 {
		t.Errorf("mode = %o, want 755", got)
	}
}

func TestMarkExecutableIdempotent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "script")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	if err := MarkExecutable(path); err != nil {
		t.Fatalf("MarkExecutable: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0755 {
		t.Errorf("mode = %o, want unchanged 755", got)
	}
}

func TestMarkExecutableRespectsGroupLessModes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on Windows")
	}

	path := filepath.Join(t.TempDir(), "script")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0600); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	if err := MarkExecutable(path); err != nil {
		t.Fatalf("MarkExecutable: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// Only the owner had read, so only the owner gains execute.
	if got := info.Mode().Perm(); got != 0700 {
		t.Errorf("mode = %o, want 700", got)
	}
}

func TestMarkExecutableMissingFile(t *testing.T) {
	if err := MarkExecutable(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
