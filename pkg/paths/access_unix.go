//go:build unix

package paths

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func checkReadWrite(dir string) error {
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("directory is not readable and writable: %w", err)
	}
	return nil
}
