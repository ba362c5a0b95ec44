// Package main is the entry point for the caro CLI.
//
// caro batch-renames NUMBER.EXTENSION files in the current directory by
// shifting the numeric part. This binary delegates all functionality to
// the internal/cli package, which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/mmr-tortoise/caro/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
// They provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This keeps
	// main.go minimal and the ldflags wiring in one place.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
