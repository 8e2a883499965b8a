// Package cli defines the Cobra command tree for rs. Each file in this
// package registers one top-level command (ls, :x, :completion-*, version,
// config, doctor) with the root command; the root command itself is the
// dispatcher that runs workspace scripts. Command implementations delegate
// to internal packages for the actual work and only handle flag parsing,
// I/O formatting, and exit codes.
package cli
