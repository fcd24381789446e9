package process

import (
	"os/exec"

	"github.com/pkg/errors"
)

// ExitCodeForError extracts the process exit code from an error returned by
// os/exec.Cmd.Run (or similar). It fails if the error doesn't represent a
// process that ran and exited.
func ExitCodeForError(err error) (int, error) {
	// Ensure that the error is a process exit error.
	var exitErr *exec.ExitError
	if err == nil {
		return 0, errors.New("nil error")
	} else if !errors.As(err, &exitErr) {
		return 0, errors.New("error is not an exit error")
	}

	// Extract the code. A negative code indicates termination by signal.
	code := exitErr.ExitCode()
	if code < 0 {
		return 0, errors.New("process did not exit normally")
	}

	// Success.
	return code, nil
}
