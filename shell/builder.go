package shell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/grovetools/jobpilot/config"
	"github.com/grovetools/jobpilot/errors"
	"github.com/grovetools/jobpilot/logging"
	"github.com/grovetools/jobpilot/pkg/paths"
	"github.com/grovetools/jobpilot/pkg/sidecar"
	"github.com/grovetools/jobpilot/version"
	"github.com/sirupsen/logrus"
)

// SetupHook runs once, synchronously, before the frontend starts. A
// non-nil error aborts startup.
type SetupHook func(app *App) error

// Frontend presents the UI. Run blocks until the UI is closed or ctx ends.
type Frontend interface {
	Run(ctx context.Context, app *App) error
}

// Builder assembles and runs the shell.
type Builder struct {
	manifest *config.Manifest
	mode     version.Mode
	resolver *paths.Resolver
	launcher *sidecar.Launcher
	hooks    []SetupHook
	frontend Frontend
}

// NewBuilder returns a Builder for the given manifest in the compiled-in mode.
func NewBuilder(manifest *config.Manifest) *Builder {
	return &Builder{
		manifest: manifest,
		mode:     version.Current,
		frontend: Headless{},
	}
}

// Setup registers a setup hook. Hooks run in registration order.
func (b *Builder) Setup(hook SetupHook) *Builder {
	b.hooks = append(b.hooks, hook)
	return b
}

// Frontend replaces the default Headless frontend.
func (b *Builder) Frontend(f Frontend) *Builder {
	b.frontend = f
	return b
}

// WithMode overrides the compiled-in mode. Production code never calls it.
func (b *Builder) WithMode(mode version.Mode) *Builder {
	b.mode = mode
	return b
}

// WithResolver overrides the path resolver derived from the manifest.
func (b *Builder) WithResolver(r *paths.Resolver) *Builder {
	b.resolver = r
	return b
}

// WithLauncher overrides the sidecar launcher, which otherwise looks next to
// the shell executable.
func (b *Builder) WithLauncher(l *sidecar.Launcher) *Builder {
	b.launcher = l
	return b
}

// Build creates the App and runs every setup hook.
func (b *Builder) Build() (*App, error) {
	if b.manifest == nil {
		return nil, errors.ConfigInvalid("no application manifest")
	}

	app := &App{
		Manifest: b.manifest,
		Mode:     b.mode,
		Paths:    b.resolver,
		Sidecars: b.launcher,
		LaunchID: uuid.NewString(),
	}
	if app.Paths == nil {
		app.Paths = paths.NewResolver(b.manifest.Identifier)
	}
	if app.Sidecars == nil {
		dir, err := sidecar.DefaultDir()
		if err != nil {
			return nil, err
		}
		app.Sidecars = sidecar.NewLauncher(dir, b.manifest.SidecarNames())
	}

	configureLogging(app)
	app.Logger = logging.NewLogger("shell").WithField("launch", app.LaunchID)
	app.Logger.WithFields(logrus.Fields{
		"identifier": b.manifest.Identifier,
		"mode":       app.Mode.String(),
		"version":    version.Version,
	}).Debug("Starting shell")

	for i, hook := range b.hooks {
		if err := hook(app); err != nil {
			return nil, fmt.Errorf("setup hook %d: %w", i, err)
		}
	}
	return app, nil
}

// Run builds the App and then runs the frontend until it returns or ctx is
// cancelled. Anything retained on the App stays alive until Run returns.
// Sidecars are not signalled on return.
func (b *Builder) Run(ctx context.Context) error {
	app, err := b.Build()
	if err != nil {
		return err
	}
	defer runtime.KeepAlive(app)

	if path := loggingSettingsPath(app); path != "" {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			if err := logging.Watch(ctx, path); err != nil {
				app.Logger.WithError(err).Debug("Not watching logging settings")
			}
		}
	}

	return b.frontend.Run(ctx, app)
}

// configureLogging applies <config dir>/logging.yml when present. Nothing is
// created when it is absent.
func configureLogging(app *App) {
	path := loggingSettingsPath(app)
	if path == "" {
		return
	}
	if err := logging.Configure(path); err != nil {
		logging.NewLogger("shell").WithError(err).Warn("Ignoring invalid logging settings")
	}
}

func loggingSettingsPath(app *App) string {
	dir, err := app.Paths.AppConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, logging.SettingsFile)
}
