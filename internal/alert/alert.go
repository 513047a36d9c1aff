// Package alert shows fatal startup errors in a native dialog when the shell
// was launched from the desktop and nobody is reading stderr.
package alert

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sqweek/dialog"
)

// Title is the dialog title used for startup failures.
const Title = "JobPilot failed to start"

// show is replaced in tests.
var show = func(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

// Interactive reports whether stderr is attached to a terminal.
func Interactive() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StartupFailure shows message in an error dialog unless stderr is a
// terminal, in which case the diagnostic already printed is enough. It
// reports whether a dialog was shown.
func StartupFailure(message string) bool {
	return startupFailure(Interactive(), message)
}

func startupFailure(interactive bool, message string) bool {
	if interactive || message == "" {
		return false
	}
	show(Title, message)
	return true
}
