// Package main is the entry point for the markdown2html CLI.
//
// The binary converts a Markdown file to HTML after checking that an
// input and an output path were given and that the input exists. All
// behavior lives in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Interrupt cancels the conversion before the output file is written.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand()
	cli.Execute(ctx, rootCmd)
}
