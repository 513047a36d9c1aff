// Package cmd holds the commands of the jobpilot binary.
package cmd

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/jobpilot/cli"
	"github.com/grovetools/jobpilot/config"
	"github.com/grovetools/jobpilot/internal/backend"
	"github.com/grovetools/jobpilot/shell"
	"github.com/spf13/cobra"
)

// StartupError marks an error returned while starting or running the shell,
// as opposed to a subcommand or flag error.
type StartupError struct {
	Err error
}

func (e *StartupError) Error() string { return e.Err.Error() }

func (e *StartupError) Unwrap() error { return e.Err }

// IsStartupError reports whether err came from running the shell.
func IsStartupError(err error) bool {
	var startup *StartupError
	return stderrors.As(err, &startup)
}

// RunFunc runs a configured shell until ctx ends.
type RunFunc func(ctx context.Context, b *shell.Builder) error

func runShell(ctx context.Context, b *shell.Builder) error {
	return b.Run(ctx)
}

// NewRootCmd returns the jobpilot root command. Without a subcommand it
// starts the shell and the backend sidecar.
func NewRootCmd() *cobra.Command {
	return newRootCmd(runShell)
}

func newRootCmd(run RunFunc) *cobra.Command {
	root := cli.NewStandardCommand("jobpilot", "JobPilot desktop shell")
	root.Long = `JobPilot desktop shell.

Started without a subcommand, the shell resolves the per-user data
directory, starts the bundled flask-backend on port 5000 and keeps it
running until the shell exits. Development builds (-tags devbuild) skip
the backend and expect it to be started by hand.`
	root.Args = cobra.NoArgs

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.ApplyLogOptions(cmd)
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		manifest, err := config.Default()
		if err != nil {
			return &StartupError{Err: err}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := run(ctx, shell.NewBuilder(manifest).Setup(backend.Setup)); err != nil {
			return &StartupError{Err: err}
		}
		return nil
	}

	root.AddCommand(cli.NewVersionCommand("jobpilot"))
	root.AddCommand(NewPathsCmd())
	root.AddCommand(NewManifestCmd())
	return root
}
