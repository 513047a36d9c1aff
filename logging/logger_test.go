package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggers(t *testing.T) {
	t.Helper()
	loggersMu.Lock()
	loggers = make(map[string]*logrus.Entry)
	current = Config{}
	output = os.Stderr
	levelOverride, presetOverride = "", ""
	closeSink()
	loggersMu.Unlock()
	t.Cleanup(func() {
		loggersMu.Lock()
		loggers = make(map[string]*logrus.Entry)
		current = Config{}
		output = os.Stderr
		levelOverride, presetOverride = "", ""
		closeSink()
		loggersMu.Unlock()
	})
}

func TestNewLogger(t *testing.T) {
	resetLoggers(t)

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])
	assert.Same(t, logger, NewLogger("test-component"))
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
}

func TestLoggerOutput(t *testing.T) {
	resetLoggers(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	NewLogger("backend").WithField("data_dir", "/tmp/x").Info("Backend sidecar started")

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "[backend]")
	assert.Contains(t, out, "Backend sidecar started")
	assert.Contains(t, out, "data_dir=/tmp/x")
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		want    []string
		notWant []string
	}{
		{
			name:   "default",
			config: FormatConfig{},
			want:   []string{"2024-01-02 03:04:05", "[WARN]", "[shell]", "hello", "a=1 b=2"},
		},
		{
			name:    "no timestamp or component",
			config:  FormatConfig{DisableTimestamp: true, DisableComponent: true},
			want:    []string{"[WARN] hello"},
			notWant: []string{"2024-01-02", "[shell]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				Level:   logrus.WarnLevel,
				Message: "hello",
				Data:    logrus.Fields{"component": "shell", "b": 2, "a": 1},
			}
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(entry)
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
			assert.True(t, strings.HasSuffix(string(out), "\n"))
		})
	}
}

func TestConfigureAppliesSettings(t *testing.T) {
	resetLoggers(t)

	logger := NewLogger("shell")

	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("level: debug\nformat:\n  preset: json\n"), 0644))

	require.NoError(t, Configure(path))
	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Logger.Formatter)
}

func TestConfigureMissingFileKeepsDefaults(t *testing.T) {
	resetLoggers(t)

	require.NoError(t, Configure(filepath.Join(t.TempDir(), SettingsFile)))
	assert.Equal(t, logrus.InfoLevel, NewLogger("shell").Logger.GetLevel())
}

func TestConfigureInvalidYAML(t *testing.T) {
	resetLoggers(t)

	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("level: [unterminated"), 0644))

	assert.Error(t, Configure(path))
}

func TestFileSink(t *testing.T) {
	resetLoggers(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "jobpilot.log")
	settings := filepath.Join(dir, SettingsFile)
	require.NoError(t, os.WriteFile(settings, []byte("file:\n  enabled: true\n  path: "+logFile+"\n"), 0644))
	require.NoError(t, Configure(settings))

	NewLogger("shell").Info("to both sinks")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both sinks")
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestWatchReloadsLevel(t *testing.T) {
	resetLoggers(t)
	SetOutput(&bytes.Buffer{})

	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	logger := NewLogger("shell")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path))

	require.NoError(t, os.WriteFile(path, []byte("level: error\n"), 0644))

	assert.Eventually(t, func() bool {
		loggersMu.Lock()
		defer loggersMu.Unlock()
		return logger.Logger.GetLevel() == logrus.ErrorLevel
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchRemovedFileRestoresDefaults(t *testing.T) {
	resetLoggers(t)
	SetOutput(&bytes.Buffer{})

	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("level: error\n"), 0644))
	require.NoError(t, Configure(path))

	logger := NewLogger("shell")
	require.Equal(t, logrus.ErrorLevel, logger.Logger.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, Watch(ctx, path))

	require.NoError(t, os.Remove(path))

	assert.Eventually(t, func() bool {
		loggersMu.Lock()
		defer loggersMu.Unlock()
		return logger.Logger.GetLevel() == logrus.InfoLevel
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", SettingsFile))
	assert.Error(t, err)
}

func TestOverridesSurviveConfigure(t *testing.T) {
	resetLoggers(t)

	logger := NewLogger("backend")
	SetLevel(logrus.DebugLevel)
	SetJSON()

	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte("level: warn\n"), 0644))
	require.NoError(t, Configure(path))

	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Logger.Formatter)
}

func TestLoadConfigRejectsUnknownSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "levle: debug\n"},
		{"unknown preset", "format:\n  preset: fancy\n"},
		{"bad level", "level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), SettingsFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"report_caller"`)
	assert.NotContains(t, string(data), `"required"`)
}
