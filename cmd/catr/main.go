// Package main is the entry point for the catr CLI.
//
// catr concatenates files (or standard input) to standard output, optionally
// numbering lines. All functionality lives in internal/cli, which defines the
// cobra command, and internal/emitter, which streams the files.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release build. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/mmr-tortoise/catr/internal/cli"
)

// version, commit, and date are set at build time via ldflags. They
// provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package before the
	// command is built, since the version string is fixed at construction.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand(afero.NewOsFs())
	os.Exit(cli.Execute(rootCmd))
}
