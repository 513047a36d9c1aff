package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/jobpilot/errors"
)

// ErrorHandler turns startup errors into a short diagnostic and an exit code.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Message returns the one-line diagnostic for err, naming the failing step.
func Message(err error) string {
	shellErr, ok := errors.As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	step := ""
	if s, ok := shellErr.Details["step"]; ok {
		step = fmt.Sprintf(" [%v]", s)
	}

	switch shellErr.Code {
	case errors.ErrCodePathUnavailable:
		return fmt.Sprintf("Startup failed%s: %s", step, shellErr.Message)
	case errors.ErrCodeDirectoryCreateFailed:
		return fmt.Sprintf("Startup failed%s: could not create data directory %v: %v", step, shellErr.Details["path"], shellErr.Cause)
	case errors.ErrCodeBinaryNotFound:
		return fmt.Sprintf("Startup failed%s: bundled backend '%v' is missing from the installation", step, shellErr.Details["binary"])
	case errors.ErrCodeSpawnFailed:
		return fmt.Sprintf("Startup failed%s: could not start %v: %v", step, shellErr.Details["path"], shellErr.Cause)
	case errors.ErrCodeSidecarNotDeclared:
		return fmt.Sprintf("Startup failed%s: %s", step, shellErr.Message)
	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigNotFound:
		return fmt.Sprintf("Configuration error: %v", err)
	default:
		return fmt.Sprintf("Error%s: %v", step, err)
	}
}

// Handle prints the diagnostic for err and returns the exit code to use.
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintln(h.Out, Message(err))

	if h.Verbose {
		if shellErr, ok := errors.As(err); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", shellErr.ToJSON())
		}
	}
	return errors.ExitCode(err)
}
