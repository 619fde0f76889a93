package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// Exit codes for godump.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file or environment errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates input or output errors.
	ExitIOError = 74
)

// ExitError attaches a process exit code to an error.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// withExitCode wraps err so ExitCodeFromError reports code. A nil err stays nil.
func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCodeFromError determines the process exit code for an error returned
// by the root command.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitInternalError
}

// noArgs rejects positional arguments as invalid usage.
func noArgs(cmd *cobra.Command, args []string) error {
	return withExitCode(ExitInvalidUsage, cobra.NoArgs(cmd, args))
}
