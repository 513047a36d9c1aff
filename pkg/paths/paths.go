// Package paths resolves the per-user directories of the application.
//
// Every directory is scoped by the application identifier, a reverse-DNS
// string fixed at build time (see config.Manifest). Resolution follows host
// conventions:
//
//   - Linux/BSD: $XDG_DATA_HOME, $XDG_CONFIG_HOME, $XDG_CACHE_HOME, falling back to ~/.local/share, ~/.config, ~/.cache
//   - macOS:     ~/Library/Application Support, ~/Library/Caches, ~/Library/Logs
//   - Windows:   %APPDATA% and %LOCALAPPDATA%
//
// Resolution never touches the filesystem. Use EnsureDir to create a directory.
package paths

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/grovetools/jobpilot/errors"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

type dirKind int

const (
	kindData dirKind = iota
	kindLocalData
	kindConfig
	kindCache
	kindLog
)

func (k dirKind) String() string {
	switch k {
	case kindData:
		return "data"
	case kindLocalData:
		return "local data"
	case kindConfig:
		return "config"
	case kindCache:
		return "cache"
	case kindLog:
		return "log"
	}
	return "unknown"
}

// Resolver resolves application directories for one identifier.
type Resolver struct {
	Identifier string

	getenv  func(string) string
	homeDir func() (string, error)
}

// NewResolver returns a Resolver for the given application identifier.
func NewResolver(identifier string) *Resolver {
	return &Resolver{
		Identifier: identifier,
		getenv:     os.Getenv,
		homeDir:    os.UserHomeDir,
	}
}

// ValidIdentifier reports whether id is a reverse-DNS application identifier.
func ValidIdentifier(id string) bool {
	return identifierRegex.MatchString(id)
}

// AppDataDir returns the per-user directory for persistent application data.
func (r *Resolver) AppDataDir() (string, error) {
	return r.resolve(kindData)
}

// AppLocalDataDir returns the per-user, machine-local data directory.
// It equals AppDataDir everywhere except Windows, where it lives under %LOCALAPPDATA%.
func (r *Resolver) AppLocalDataDir() (string, error) {
	return r.resolve(kindLocalData)
}

// AppConfigDir returns the per-user configuration directory.
func (r *Resolver) AppConfigDir() (string, error) {
	return r.resolve(kindConfig)
}

// AppCacheDir returns the per-user cache directory.
func (r *Resolver) AppCacheDir() (string, error) {
	return r.resolve(kindCache)
}

// AppLogDir returns the per-user log directory.
func (r *Resolver) AppLogDir() (string, error) {
	return r.resolve(kindLog)
}

func (r *Resolver) resolve(kind dirKind) (string, error) {
	if r.Identifier == "" {
		return "", errors.PathUnavailable("application identifier is not configured", nil)
	}
	if !ValidIdentifier(r.Identifier) {
		return "", errors.PathUnavailable("invalid application identifier", nil).
			WithDetail("identifier", r.Identifier)
	}

	base, sub, err := r.platformBase(kind)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, r.Identifier)
	if sub != "" {
		dir = filepath.Join(dir, sub)
	}
	return dir, nil
}

// envDir returns the value of key when it is an absolute path. Relative
// values are ignored, as required by the XDG base directory conventions.
func (r *Resolver) envDir(key string) string {
	v := r.env(key)
	if v == "" || !filepath.IsAbs(v) {
		return ""
	}
	return filepath.Clean(v)
}

func (r *Resolver) env(key string) string {
	if r.getenv == nil {
		return os.Getenv(key)
	}
	return r.getenv(key)
}

func (r *Resolver) home(kind dirKind) (string, error) {
	lookup := r.homeDir
	if lookup == nil {
		lookup = os.UserHomeDir
	}
	home, err := lookup()
	if err != nil {
		return "", errors.PathUnavailable("home directory could not be discovered", err).
			WithDetail("kind", kind.String())
	}
	if home == "" || !filepath.IsAbs(home) {
		return "", errors.PathUnavailable("home directory is not an absolute path", nil).
			WithDetail("kind", kind.String()).
			WithDetail("home", home)
	}
	return home, nil
}
