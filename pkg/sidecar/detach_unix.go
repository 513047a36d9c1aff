//go:build unix

package sidecar

import (
	"os/exec"
	"syscall"
)

// detach starts the child in a new process group.
func detach(c *exec.Cmd) {
	if c.SysProcAttr == nil {
		c.SysProcAttr = &syscall.SysProcAttr{}
	}
	c.SysProcAttr.Setpgid = true
}
