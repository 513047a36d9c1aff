package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/jobpilot/errors"
)

// EnsureDir creates dir and any missing ancestors. A directory that already
// exists is not an error. It returns the canonical absolute path of the
// directory, with symlinks resolved, once it is known to be readable and
// writable by the current user.
func EnsureDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.DirectoryCreateFailed(dir, fmt.Errorf("empty path"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.DirectoryCreateFailed(dir, err)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", errors.DirectoryCreateFailed(abs, err)
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.DirectoryCreateFailed(abs, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", errors.DirectoryCreateFailed(canonical, err)
	}
	if !info.IsDir() {
		return "", errors.DirectoryCreateFailed(canonical, fmt.Errorf("not a directory"))
	}

	if err := checkReadWrite(canonical); err != nil {
		return "", errors.DirectoryCreateFailed(canonical, err)
	}

	return canonical, nil
}
