package workspace

import "testing"

func TestValidateManifestValid(t *testing.T) {
	data := []byte(`default: build
min_rs_version: "1.0.0"
description: Example workspace
commands:
  build: Compile everything
`)

	result, err := ValidateManifest(data)
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got issues: %+v", result.Issues)
	}
}

func TestValidateManifestEmpty(t *testing.T) {
	result, err := ValidateManifest([]byte("{}"))
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty manifest should be valid, got issues: %+v", result.Issues)
	}
}

func TestValidateManifestRejectsUnknownKeys(t *testing.T) {
	result, err := ValidateManifest([]byte("defualt: build\n"))
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if result.Valid {
		t.Error("expected misspelled key to fail validation")
	}
}

func TestValidateManifestRejectsBadVersion(t *testing.T) {
	result, err := ValidateManifest([]byte("min_rs_version: latest\n"))
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if result.Valid {
		t.Error("expected non-semver min_rs_version to fail validation")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one validation issue")
	}
}

func TestValidateManifestRejectsWrongType(t *testing.T) {
	result, err := ValidateManifest([]byte("commands: [build, publish]\n"))
	if err != nil {
		t.Fatalf("ValidateManifest: %v", err)
	}
	if result.Valid {
		t.Error("expected list-typed commands to fail validation")
	}
}
