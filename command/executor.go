package command

import (
	"os/exec"
)

// Executor creates exec.Cmd instances. This abstraction allows for dependency
// injection, enabling test-specific command creation logic without modifying
// production code.
//
// There is deliberately no context-aware variant: exec.CommandContext kills
// the process when its context ends, and a sidecar must outlive the scope
// that started it.
type Executor interface {
	// Command creates a new exec.Cmd instance for the given program and arguments.
	Command(path string, args ...string) *exec.Cmd
}

// RealExecutor is the production implementation of the Executor interface,
// which uses the standard os/exec package to create commands.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(path string, args ...string) *exec.Cmd {
	return exec.Command(path, args...)
}
