//go:build darwin

package paths

import "path/filepath"

func (r *Resolver) platformBase(kind dirKind) (string, string, error) {
	home, err := r.home(kind)
	if err != nil {
		return "", "", err
	}

	switch kind {
	case kindCache:
		return filepath.Join(home, "Library", "Caches"), "", nil
	case kindLog:
		return filepath.Join(home, "Library", "Logs"), "", nil
	default:
		return filepath.Join(home, "Library", "Application Support"), "", nil
	}
}
