package completion

import (
	"strings"
	"testing"
)

func TestScriptForEachShell(t *testing.T) {
	for _, shell := range Shells {
		t.Run(shell, func(t *testing.T) {
			script, err := Script(shell)
			if err != nil {
				t.Fatalf("Script(%q): %v", shell, err)
			}
			// Every snippet sources its names from `rs ls`, so the offered
			// completions always match the listing.
			if !strings.Contains(script, "rs ls") {
				t.Errorf("%s snippet does not query `rs ls`:\n%s", shell, script)
			}
		})
	}
}

func TestScriptBashRegistersCompletion(t *testing.T) {
	script, err := Script("bash")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if !strings.Contains(script, "complete -F") {
		t.Errorf("bash snippet missing complete registration:\n%s", script)
	}
}

func TestScriptZshRegistersCompletion(t *testing.T) {
	script, err := Script("zsh")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if !strings.Contains(script, "compdef") {
		t.Errorf("zsh snippet missing compdef registration:\n%s", script)
	}
}

func TestScriptFishRegistersCompletion(t *testing.T) {
	script, err := Script("fish")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if !strings.Contains(script, "complete -c rs") {
		t.Errorf("fish snippet missing complete registration:\n%s", script)
	}
}

func TestScriptUnsupportedShell(t *testing.T) {
	if _, err := Script("powershell"); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
}
