// Package testutil provides helpers shared by tests that spawn sidecars.
//
// The fake sidecar is the test binary itself: InstallFakeSidecar copies it
// under the requested name, and a TestMain that calls
// RunFakeSidecarIfRequested turns the copy into a small backend stand-in
// instead of running the tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	// FakeSidecarEnv switches a test binary into fake sidecar mode.
	FakeSidecarEnv = "JOBPILOT_FAKE_SIDECAR"
	// FakeSidecarModeEnv selects the behavior: "serve" (default), "exit:<code>",
	// "flood:<lines>" or "linger".
	FakeSidecarModeEnv = "JOBPILOT_FAKE_SIDECAR_MODE"
	// ArgvFile is written into --data-dir by the fake sidecar and holds its argv as JSON.
	ArgvFile = "fake-sidecar-argv.json"
	// AliveFile is written into --data-dir by a lingering fake sidecar once it
	// has written output after its start-up delay.
	AliveFile = "fake-sidecar-alive"
)

// lingerDelay is how long a lingering fake sidecar stays quiet before it
// writes output again.
const lingerDelay = 500 * time.Millisecond

// fakeSidecarLifetime bounds how long a fake sidecar lingers if a test
// forgets to kill it.
const fakeSidecarLifetime = 2 * time.Minute

// RunFakeSidecarIfRequested runs the fake sidecar and exits when the
// process was started as one. Call it first thing in TestMain.
func RunFakeSidecarIfRequested() {
	if os.Getenv(FakeSidecarEnv) != "1" {
		return
	}
	os.Exit(runFakeSidecar(os.Args[1:], os.Stdout, os.Stderr))
}

func runFakeSidecar(args []string, stdout, stderr io.Writer) int {
	argv, _ := json.Marshal(args)
	fmt.Fprintf(stdout, "argv %s\n", argv)

	if dataDir := flagValue(args, "--data-dir"); dataDir != "" {
		if err := os.WriteFile(filepath.Join(dataDir, ArgvFile), argv, 0644); err != nil {
			fmt.Fprintf(stderr, "write argv: %v\n", err)
			return 3
		}
	}

	mode := os.Getenv(FakeSidecarModeEnv)
	switch {
	case strings.HasPrefix(mode, "exit:"):
		code, _ := strconv.Atoi(strings.TrimPrefix(mode, "exit:"))
		fmt.Fprintln(stderr, "exiting")
		return code
	case mode == "linger":
		time.Sleep(lingerDelay)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(stdout, "still here %d\n", i)
			fmt.Fprintf(stderr, "still here %d\n", i)
		}
		if dataDir := flagValue(args, "--data-dir"); dataDir != "" {
			if err := os.WriteFile(filepath.Join(dataDir, AliveFile), []byte("alive\n"), 0644); err != nil {
				return 3
			}
		}
		return 0
	case strings.HasPrefix(mode, "flood:"):
		n, _ := strconv.Atoi(strings.TrimPrefix(mode, "flood:"))
		for i := 0; i < n; i++ {
			fmt.Fprintf(stdout, "line %d\n", i)
		}
		return 0
	}

	fmt.Fprintln(stderr, "serving on port", flagValue(args, "--port"))
	time.Sleep(fakeSidecarLifetime)
	return 0
}

func flagValue(args []string, name string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == name {
			return args[i+1]
		}
	}
	return ""
}

// InstallFakeSidecar copies the running test binary into dir as name (plus
// the platform executable suffix) and enables fake sidecar mode for
// processes started by the test. It returns the installed path.
func InstallFakeSidecar(t *testing.T, dir, name string) string {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	dst := filepath.Join(dir, name)
	CopyFile(t, exe, dst, 0755)

	t.Setenv(FakeSidecarEnv, "1")
	return dst
}

// CopyFile copies src to dst with the given permissions.
func CopyFile(t *testing.T, src, dst string, perm os.FileMode) {
	t.Helper()

	in, err := os.Open(src)
	require.NoError(t, err)
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	require.NoError(t, err)

	_, err = io.Copy(out, in)
	require.NoError(t, err)
	require.NoError(t, out.Close())
}

// ReadArgv returns the argument vector the fake sidecar recorded in dataDir,
// waiting up to timeout for the child to write it.
func ReadArgv(t *testing.T, dataDir string, timeout time.Duration) []string {
	t.Helper()

	path := filepath.Join(dataDir, ArgvFile)
	var argv []string
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			return false
		}
		return json.Unmarshal(data, &argv) == nil
	}, timeout, 10*time.Millisecond, "fake sidecar never wrote %s", path)
	return argv
}
