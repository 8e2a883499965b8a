// Package completion generates shell snippets that register tab completion
// for command names. Each snippet is meant for eval and queries `rs ls` at
// completion time, so the offered names always track the bs/ directory.
package completion

import (
	"fmt"
	"strings"

	"github.com/rs-build/rs/internal/branding"
)

// Shells lists the supported completion targets.
var Shells = []string{"bash", "zsh", "fish"}

const bashTemplate = `_%[1]s_complete() {
  local cur="${COMP_WORDS[COMP_CWORD]}"
  if [ "$COMP_CWORD" -eq 1 ]; then
    COMPREPLY=( $(compgen -W "$(%[1]s ls 2>/dev/null)" -- "$cur") )
  fi
}
complete -F _%[1]s_complete %[1]s
`

const zshTemplate = `_%[1]s_complete() {
  local -a commands
  commands=(${(f)"$(%[1]s ls 2>/dev/null)"})
  _describe '%[1]s command' commands
}
compdef _%[1]s_complete %[1]s
`

const fishTemplate = `complete -c %[1]s -f -n '__fish_use_subcommand' -a '(%[1]s ls 2>/dev/null)'
`

// Script returns the completion snippet for the given shell.
func Script(shell string) (string, error) {
	name := branding.CLIName()
	switch shell {
	case "bash":
		return fmt.Sprintf(bashTemplate, name), nil
	case "zsh":
		return fmt.Sprintf(zshTemplate, name), nil
	case "fish":
		return fmt.Sprintf(fishTemplate, name), nil
	default:
		return "", fmt.Errorf("unsupported shell %q: supported shells are %s",
			shell, strings.Join(Shells, ", "))
	}
}
