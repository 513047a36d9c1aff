//go:build windows

package paths

import "path/filepath"

func (r *Resolver) platformBase(kind dirKind) (string, string, error) {
	switch kind {
	case kindData, kindConfig:
		return r.knownFolder("APPDATA", kind, "Roaming")
	case kindLocalData, kindCache:
		return r.knownFolder("LOCALAPPDATA", kind, "Local")
	case kindLog:
		base, _, err := r.knownFolder("LOCALAPPDATA", kind, "Local")
		return base, "logs", err
	}
	return "", "", nil
}

// knownFolder reads the folder from the environment, falling back to the
// default location under %USERPROFILE%\AppData.
func (r *Resolver) knownFolder(key string, kind dirKind, leaf string) (string, string, error) {
	if dir := r.envDir(key); dir != "" {
		return dir, "", nil
	}
	home, err := r.home(kind)
	if err != nil {
		return "", "", err
	}
	return filepath.Join(home, "AppData", leaf), "", nil
}
