//go:build windows

package paths

import (
	"fmt"
	"os"
)

// checkReadWrite creates and removes a probe file in dir. The read-only
// attribute is not consulted: Windows ignores it on directories, and
// Explorer sets it on customized folders.
func checkReadWrite(dir string) error {
	f, err := os.CreateTemp(dir, ".jobpilot-write-*")
	if err != nil {
		return fmt.Errorf("directory is not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("directory does not allow removing files: %w", err)
	}
	return nil
}
