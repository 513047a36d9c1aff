// Package shell hosts the desktop application runtime: it owns the
// long-lived App state, runs setup hooks once at startup, and then hands
// control to the frontend until the shell exits.
package shell

import (
	"reflect"
	"sync"

	"github.com/grovetools/jobpilot/config"
	"github.com/grovetools/jobpilot/pkg/paths"
	"github.com/grovetools/jobpilot/pkg/sidecar"
	"github.com/grovetools/jobpilot/version"
	"github.com/sirupsen/logrus"
)

// App is the state container that lives as long as the shell. Values
// registered with Manage stay reachable until the shell exits.
type App struct {
	Manifest *config.Manifest
	Mode     version.Mode
	Paths    *paths.Resolver
	Sidecars *sidecar.Launcher
	// LaunchID identifies this shell run in diagnostics.
	LaunchID string
	Logger   *logrus.Entry

	mu    sync.RWMutex
	state map[reflect.Type]any
}

// Manage stores v on app, keyed by its type. The first value registered for
// a type wins; Manage reports whether v was stored.
func Manage[T any](app *App, v T) bool {
	key := reflect.TypeFor[T]()

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.state == nil {
		app.state = make(map[reflect.Type]any)
	}
	if _, exists := app.state[key]; exists {
		return false
	}
	app.state[key] = v
	return true
}

// State returns the value of type T stored with Manage.
func State[T any](app *App) (T, bool) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	v, ok := app.state[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
