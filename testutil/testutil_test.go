package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFakeSidecarExitMode(t *testing.T) {
	t.Setenv(FakeSidecarModeEnv, "exit:7")
	dataDir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code := runFakeSidecar([]string{"--data-dir", dataDir, "--port", "5000"}, &stdout, &stderr)

	assert.Equal(t, 7, code)
	assert.Contains(t, stdout.String(), `argv ["--data-dir","`+dataDir+`","--port","5000"]`)

	data, err := os.ReadFile(filepath.Join(dataDir, ArgvFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "--port")
}

func TestRunFakeSidecarFloodMode(t *testing.T) {
	t.Setenv(FakeSidecarModeEnv, "flood:3")

	var stdout, stderr bytes.Buffer
	code := runFakeSidecar(nil, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "line 2\n")
}

func TestFlagValue(t *testing.T) {
	args := []string{"--data-dir", "/d", "--port", "5000"}
	assert.Equal(t, "/d", flagValue(args, "--data-dir"))
	assert.Equal(t, "5000", flagValue(args, "--port"))
	assert.Equal(t, "", flagValue(args, "--host"))
	assert.Equal(t, "", flagValue([]string{"--port"}, "--port"))
}
