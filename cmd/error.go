package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// ExitCodeError is returned by entry points that completed normally but need
// the process to terminate with a specific exit code, e.g. to propagate the
// exit code of a child program.
type ExitCodeError struct {
	// Code is the requested exit code.
	Code int
}

// Error implements error.Error.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode extracts a requested exit code from err, if any.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// Warning prints a warning message to standard error.
func Warning(message string) {
	color.New(color.FgYellow).Fprintln(os.Stderr, "Warning:", message)
}

// Error prints an error message to standard error.
func Error(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
}

// Fatal prints an error message to standard error and then terminates the
// process with an error exit code.
func Fatal(err error) {
	Error(err)
	os.Exit(1)
}

// Exit terminates the process with the specified exit code, printing a note to
// standard error if the code is non-zero.
func Exit(code int) {
	if code != 0 {
		fmt.Fprintln(os.Stderr, "Program exited with code", code)
	}
	os.Exit(code)
}
