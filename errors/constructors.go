package errors

import (
	"fmt"
	"os/exec"
)

// PathUnavailable reports that the host cannot supply a per-user directory.
func PathUnavailable(reason string, cause error) *ShellError {
	msg := fmt.Sprintf("per-user data directory unavailable: %s", reason)
	if cause == nil {
		return New(ErrCodePathUnavailable, msg)
	}
	return Wrap(cause, ErrCodePathUnavailable, msg)
}

// DirectoryCreateFailed reports that the filesystem refused to create dir.
func DirectoryCreateFailed(dir string, err error) *ShellError {
	return Wrap(err, ErrCodeDirectoryCreateFailed, fmt.Sprintf("failed to create directory: %s", dir)).
		WithDetail("path", dir)
}

// BinaryNotFound reports a bundled sidecar executable missing from disk.
func BinaryNotFound(name string, searched []string) *ShellError {
	return New(ErrCodeBinaryNotFound, fmt.Sprintf("bundled binary '%s' not found", name)).
		WithDetail("binary", name).
		WithDetail("searched", searched)
}

// SidecarNotDeclared reports a sidecar name absent from the manifest.
func SidecarNotDeclared(name string) *ShellError {
	return New(ErrCodeSidecarNotDeclared,
		fmt.Sprintf("sidecar '%s' is not declared in bundle.external_bin", name)).
		WithDetail("binary", name)
}

// SpawnFailed wraps the OS error returned when starting path fails.
func SpawnFailed(path string, err error) *ShellError {
	shellErr := Wrap(err, ErrCodeSpawnFailed, fmt.Sprintf("failed to spawn: %s", path)).
		WithDetail("path", path)

	if exitErr, ok := err.(*exec.ExitError); ok {
		shellErr = shellErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return shellErr
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ShellError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ShellError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
