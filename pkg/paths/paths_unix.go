//go:build !darwin && !windows

package paths

import "path/filepath"

func (r *Resolver) platformBase(kind dirKind) (string, string, error) {
	switch kind {
	case kindData, kindLocalData:
		return r.xdg("XDG_DATA_HOME", kind, ".local", "share")
	case kindConfig:
		return r.xdg("XDG_CONFIG_HOME", kind, ".config")
	case kindCache:
		return r.xdg("XDG_CACHE_HOME", kind, ".cache")
	case kindLog:
		base, _, err := r.xdg("XDG_DATA_HOME", kind, ".local", "share")
		return base, "logs", err
	}
	return "", "", nil
}

func (r *Resolver) xdg(key string, kind dirKind, fallback ...string) (string, string, error) {
	if dir := r.envDir(key); dir != "" {
		return dir, "", nil
	}
	home, err := r.home(kind)
	if err != nil {
		return "", "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), "", nil
}
