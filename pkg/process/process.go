// Package process answers liveness questions about OS processes.
package process

// IsProcessAlive reports whether a process with the given PID is still running.
// PIDs of zero or less are never alive.
func IsProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	return isAlive(pid)
}
