package logging

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watch re-applies the settings file at path whenever it changes, until ctx
// is cancelled. The parent directory must exist; it is watched rather than
// the file so the file may be created later or replaced via rename.
func Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go watch(ctx, watcher, path)
	return nil
}

func watch(ctx context.Context, watcher *fsnotify.Watcher, path string) {
	defer watcher.Close()

	logger := NewLogger("logging")

	// Editors emit bursts of events per save; reload once the burst settles.
	reload := time.NewTimer(watchDebounce)
	reload.Stop()
	defer reload.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			reload.Reset(watchDebounce)
		case <-reload.C:
			if err := Configure(path); err != nil {
				logger.WithError(err).Warn("Failed to reload logging settings")
				continue
			}
			logger.WithField("path", path).Debug("Reloaded logging settings")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}
