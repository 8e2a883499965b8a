package main

import (
	"os"

	"github.com/rs-build/rs/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Dispatched commands pass their exit code through unchanged.
	os.Exit(cli.Execute(version, commit, date))
}
