// Package model defines the error and exit-code types for the markdown2html
// CLI.
//
// The package has no external dependencies. It defines exit codes
// (ExitCode) and a custom error type (CLIError) that carries an exit code
// and an error kind, so the CLI layer can translate any failure into a
// single diagnostic line and the correct OS process exit status.
package model
