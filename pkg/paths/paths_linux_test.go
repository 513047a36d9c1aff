//go:build linux

package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "com.jobpilot.app"

func TestAppDataDir_LinuxDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := NewResolver(testID).AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", testID), dir)
}

func TestAppDataDir_LinuxCustomXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	dir, err := NewResolver(testID).AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/data", testID), dir)
}

func TestAppDataDir_LinuxRelativeXDGIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "relative/data")

	dir, err := NewResolver(testID).AppDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", testID), dir)
}

func TestAppDirs_LinuxDistinctRoots(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")

	r := NewResolver(testID)

	data, err := r.AppDataDir()
	require.NoError(t, err)
	config, err := r.AppConfigDir()
	require.NoError(t, err)
	cache, err := r.AppCacheDir()
	require.NoError(t, err)
	logs, err := r.AppLogDir()
	require.NoError(t, err)
	local, err := r.AppLocalDataDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", testID), config)
	assert.Equal(t, filepath.Join(home, ".cache", testID), cache)
	assert.Equal(t, filepath.Join(data, "logs"), logs)
	assert.Equal(t, data, local)
	assert.NotEqual(t, data, config)
	assert.NotEqual(t, data, cache)
}

func TestAppDataDir_LinuxMissingHome(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	_, err := NewResolver(testID).AppDataDir()
	require.Error(t, err)
}
