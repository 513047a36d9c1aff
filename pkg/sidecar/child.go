package sidecar

import (
	"os/exec"
	"sync"

	"github.com/grovetools/jobpilot/pkg/process"
)

// Child is a handle to a spawned sidecar. Dropping the handle does not
// affect the process; only Kill does.
type Child struct {
	cmd  *exec.Cmd
	path string
	args []string

	done   chan struct{}
	mu     sync.Mutex
	status ExitStatus
	exited bool
}

// Pid returns the OS process ID.
func (c *Child) Pid() int {
	return c.cmd.Process.Pid
}

// Path returns the resolved executable path.
func (c *Child) Path() string {
	return c.path
}

// Args returns a copy of the argument vector, excluding the program name.
func (c *Child) Args() []string {
	return append([]string(nil), c.args...)
}

// Done is closed once the child has exited and been reaped.
func (c *Child) Done() <-chan struct{} {
	return c.done
}

// ExitStatus returns the exit status once the child has exited.
func (c *Child) ExitStatus() (ExitStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status, c.exited
}

// Alive reports whether the child is still running.
func (c *Child) Alive() bool {
	select {
	case <-c.done:
		return false
	default:
	}
	return process.IsProcessAlive(c.Pid())
}

// Kill terminates the child immediately. The shell never calls it; it exists
// for hosts that explicitly want the backend gone.
func (c *Child) Kill() error {
	return c.cmd.Process.Kill()
}

func (c *Child) setExited(status ExitStatus) {
	c.mu.Lock()
	c.status = status
	c.exited = true
	c.mu.Unlock()
	close(c.done)
}
