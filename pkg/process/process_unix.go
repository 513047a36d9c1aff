//go:build unix

package process

import (
	"errors"
	"os"
	"syscall"
)

func isAlive(pid int) bool {
	// FindProcess never fails on Unix; the signal does the real check.
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	// Signal 0 checks for existence without delivering anything. EPERM
	// still means the process exists, it just belongs to someone else.
	err = p.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
