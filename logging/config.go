package logging

import (
	"os"

	"github.com/grovetools/jobpilot/errors"
	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the optional logging settings file inside the
// application config directory.
const SettingsFile = "logging.yml"

// Config defines the structure of logging.yml.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string `yaml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=warning,enum=error,enum=fatal,enum=panic"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool `yaml:"report_caller"`

	// File configures logging to a file. Disabled unless set explicitly.
	File FileSinkConfig `yaml:"file"`

	// Format configures the appearance of the log output.
	Format FormatConfig `yaml:"format"`
}

// FileSinkConfig configures the file logging sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path is the full path to the log file.
	Path string `yaml:"path"`
}

// FormatConfig controls the log output format.
type FormatConfig struct {
	// Preset can be "default" (rich text), "simple" (minimal text), or "json".
	Preset string `yaml:"preset" jsonschema:"enum=default,enum=simple,enum=json"`
	// DisableTimestamp disables the timestamp from the "default" and "simple" formats.
	DisableTimestamp bool `yaml:"disable_timestamp"`
	// DisableComponent disables the component name from the "default" and "simple" formats.
	DisableComponent bool `yaml:"disable_component"`
}

// LoadConfig reads logging settings from path. A missing file yields the
// zero Config and a CONFIG_NOT_FOUND error the caller may ignore.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.ConfigNotFound(path)
		}
		return cfg, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read logging settings").
			WithDetail("path", path)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse logging settings").
			WithDetail("path", path)
	}
	if raw != nil {
		validator, err := newValidator()
		if err != nil {
			return Config{}, errors.Wrap(err, errors.ErrCodeInternal, "failed to build logging schema")
		}
		if err := validator.Validate(raw); err != nil {
			return Config{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "logging settings do not match schema").
				WithDetail("path", path)
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse logging settings").
			WithDetail("path", path)
	}
	return cfg, nil
}
