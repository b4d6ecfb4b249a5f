// Package cli implements the cobra-based command line for markdown2html.
//
// The root command is the whole program: it checks that an input and an
// output path were given, checks that the input exists, and converts it.
// This file defines the root command, global flags and the error-to-exit
// code translation. The gate checks live in gate.go and the conversion
// step in convert.go.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/model"
)

// Global flag variables. They are rebound to their defaults every time
// NewRootCommand is called.
var (
	// jsonOutput switches failure diagnostics to a single-line JSON object.
	jsonOutput bool

	// verbose enables progress logging on stderr.
	verbose bool

	// configPath is the optional conversion options file.
	configPath string

	// helpRequested is set when -h/--help printed the help text. Help is
	// not a conversion, so Run still reports the usage error.
	helpRequested bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	helpRequested = false

	rootCmd := &cobra.Command{
		Use:   "markdown2html <input.md> <output.html>",
		Short: "Convert a Markdown file to HTML",
		Long: fmt.Sprintf(`markdown2html converts a Markdown file to HTML.

Headings written with one to six leading '#' characters become <h1>..<h6>
elements; every other line becomes a <p> element.

The command exits 1 when fewer than two paths are given or when the input
file does not exist, and 0 once the output has been written. Printing
this help also exits 1.

Examples:
  markdown2html README.md README.html
  markdown2html --config markdown2html.yaml notes.md notes.html

Version: %s (commit: %s, built: %s)`, Version, Commit, Date),

		// Errors are printed by Run as exactly one line.
		SilenceUsage:  true,
		SilenceErrors: true,

		Args: validateArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1])
		},
	}

	// Flag parse failures are usage errors.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitGeneralError, model.KindUsage, err.Error(), nil)
	})

	// Help goes to stdout as usual, then exits like any other invocation
	// without an input and an output path.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		helpRequested = true
		defaultHelp(c, args)
	})

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print errors as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Conversion options file (.yaml, .json, .jsonc, .toml)")

	return rootCmd
}

// Execute runs the root command and exits the process with the resulting
// code. This is the main entry point called from main.go.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	if code := Run(ctx, rootCmd, os.Stderr); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes rootCmd and translates its error into an exit code.
// Failures are reported to stderr as one line; success writes nothing.
//
// CLIError values carry their own exit code; any other error exits with
// ExitGeneralError.
func Run(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) model.ExitCode {
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil && helpRequested {
		err = model.NewUsageError()
	}
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if !errors.As(err, &cliErr) {
		cliErr = model.NewCLIError(model.ExitGeneralError, "", err.Error())
	}
	printError(stderr, cliErr)
	return cliErr.Code
}

// errorJSON is the --json diagnostic shape.
type errorJSON struct {
	Error errorBodyJSON `json:"error"`
}

type errorBodyJSON struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// printError writes cliErr to w in text or JSON form, depending on the
// --json flag. Either way the output is a single line.
func printError(w io.Writer, cliErr *model.CLIError) {
	if jsonOutput {
		body := errorBodyJSON{
			Kind:    cliErr.Kind.String(),
			Message: cliErr.Message,
		}
		if cliErr.Err != nil {
			body.Detail = cliErr.Err.Error()
		}
		data, _ := json.Marshal(errorJSON{Error: body})
		fmt.Fprintln(w, string(data))
		return
	}

	fmt.Fprintln(w, cliErr.Error())
}

// VerboseLog prints a message to the command's stderr only when verbose
// mode is enabled.
func VerboseLog(cmd *cobra.Command, format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "[verbose] "+format+"\n", args...)
	}
}
