package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/jobpilot/errors"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	current Config
	output  io.Writer = os.Stderr

	// sink is the log file shared by every logger while the file sink is on.
	sink     *os.File
	sinkPath string
	sinkErr  error

	// Command-line overrides. They outlive Configure.
	levelOverride  string
	presetOverride string
)

// Configure loads logging settings from path and applies them to every
// logger, existing and future. A missing file leaves the defaults in place.
func Configure(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil && !errors.Is(err, errors.ErrCodeConfigNotFound) {
		return err
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	current = cfg
	refreshSink()
	for component, entry := range loggers {
		configure(entry.Logger, component)
	}
	return nil
}

// SetOutput redirects the console sink of every logger. Defaults to stderr.
func SetOutput(w io.Writer) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	output = w
	for component, entry := range loggers {
		configure(entry.Logger, component)
	}
}

// SetLevel overrides the level of every logger, including the level read
// from the settings file.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelOverride = level.String()
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	configure(logger, component)

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// configure applies the current settings to logger. Callers hold loggersMu.
func configure(logger *logrus.Logger, component string) {
	levelName := current.Level
	if levelOverride != "" {
		levelName = levelOverride
	}
	level, err := logrus.ParseLevel(levelName)
	if levelName == "" || err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetReportCaller(current.ReportCaller)

	preset := current.Format.Preset
	if presetOverride != "" {
		preset = presetOverride
	}
	switch preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: current.Format, Colorize: isTerminal(output)})
	}

	switch {
	case sink != nil:
		logger.SetOutput(io.MultiWriter(output, sink))
	case sinkErr != nil:
		logger.SetOutput(output)
		logger.Warnf("File logging disabled for %s: %v", component, sinkErr)
	default:
		logger.SetOutput(output)
	}
}

// refreshSink opens the file named by the current settings, reusing the open
// file when the path is unchanged and closing it when the path changes or
// the sink is turned off. Callers hold loggersMu.
func refreshSink() {
	sinkErr = nil
	if !current.File.Enabled || current.File.Path == "" {
		closeSink()
		return
	}

	path := expandPath(current.File.Path)
	if sink != nil && sinkPath == path {
		return
	}
	closeSink()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		sinkErr = fmt.Errorf("create log directory: %w", err)
		return
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		sinkErr = fmt.Errorf("open log file %s: %w", path, err)
		return
	}
	sink, sinkPath = file, path
}

func closeSink() {
	if sink != nil {
		sink.Close()
	}
	sink, sinkPath = nil, ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SetJSON switches every logger to the JSON formatter, whatever preset the
// settings file names.
func SetJSON() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	presetOverride = "json"
	for component, entry := range loggers {
		configure(entry.Logger, component)
	}
}
