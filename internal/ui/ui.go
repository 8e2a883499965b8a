// Package ui renders the CLI's styled output. Styling is cosmetic only:
// every function degrades to plain text under NO_COLOR or `color: never`,
// so output stays grep- and eval-safe.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/rs-build/rs/internal/config"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A83248"))
	boldStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Enabled reports whether styled output is active. NO_COLOR wins over the
// user config.
func Enabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return config.Get(config.KeyColor) != "never"
}

// Error renders an error message.
func Error(s string) string {
	if !Enabled() {
		return s
	}
	return errorStyle.Render(s)
}

// Bold renders emphasized text.
func Bold(s string) string {
	if !Enabled() {
		return s
	}
	return boldStyle.Render(s)
}

// Faint renders de-emphasized text.
func Faint(s string) string {
	if !Enabled() {
		return s
	}
	return faintStyle.Render(s)
}
