package shell

import "context"

// Headless is a Frontend without a window. It keeps the shell, and with it
// every retained sidecar handle, alive until ctx is cancelled.
type Headless struct{}

// Run blocks until ctx is done.
func (Headless) Run(ctx context.Context, app *App) error {
	app.Logger.Info("Shell running, press Ctrl+C to quit")
	<-ctx.Done()
	app.Logger.Debug("Shell stopping")
	return nil
}
