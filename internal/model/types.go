package model

import (
	"errors"
	"fmt"
)

// UsageText is the one-line usage message printed when fewer than two
// positional arguments are supplied.
const UsageText = "Usage: markdown2html README.md README.html"

// ExitCode defines the process exit codes returned by the CLI.
// Scripts can rely on 0 meaning the output was produced and 1 meaning
// nothing was converted.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates any failure: bad arguments, a missing
	// input file, an unreadable config, or a conversion I/O error.
	ExitGeneralError ExitCode = 1
)

// ErrorKind classifies a CLIError. It is surfaced in --json output so
// callers can distinguish failures without parsing messages.
type ErrorKind string

const (
	// KindUsage means fewer than two positional arguments were given,
	// or a flag could not be parsed.
	KindUsage ErrorKind = "usage"

	// KindInputNotFound means the input path does not name an existing
	// regular file.
	KindInputNotFound ErrorKind = "input-not-found"

	// KindConfig means the --config file could not be read or parsed.
	KindConfig ErrorKind = "config"

	// KindConversion means reading the input or writing the output failed.
	KindConversion ErrorKind = "conversion"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code, kind and message.
func NewCLIError(code ExitCode, kind ErrorKind, message string) *CLIError {
	return &CLIError{Code: code, Kind: kind, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, kind ErrorKind, message string, err error) *CLIError {
	return &CLIError{Code: code, Kind: kind, Message: message, Err: err}
}

// NewUsageError reports an invocation with too few positional arguments.
func NewUsageError() *CLIError {
	return NewCLIError(ExitGeneralError, KindUsage, UsageText)
}

// NewInputNotFoundError reports that path does not exist. The message
// names the path exactly as the user typed it.
func NewInputNotFoundError(path string) *CLIError {
	return NewCLIError(ExitGeneralError, KindInputNotFound, fmt.Sprintf("Missing %s", path))
}

// IsKind reports whether err, or any error it wraps, is a CLIError of
// the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Kind == kind
	}
	return false
}
