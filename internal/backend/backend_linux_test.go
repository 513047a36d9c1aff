//go:build linux

package backend

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/grovetools/jobpilot/testutil"
	"github.com/grovetools/jobpilot/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parentPID reads the PPid field of /proc/<pid>/status.
func parentPID(t *testing.T, pid int) int {
	t.Helper()
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/status", pid))
	require.NoError(t, err)
	for _, line := range strings.Split(string(data), "\n") {
		if rest, ok := strings.CutPrefix(line, "PPid:"); ok {
			ppid, err := strconv.Atoi(strings.TrimSpace(rest))
			require.NoError(t, err)
			return ppid
		}
	}
	t.Fatalf("no PPid in /proc/%d/status", pid)
	return 0
}

func TestChildParentIsShell(t *testing.T) {
	f := newFixture(t)
	testutil.InstallFakeSidecar(t, f.binDir, SidecarName)

	app, err := f.build(version.Release)
	require.NoError(t, err)
	proc := retained(t, app)

	assert.Equal(t, os.Getpid(), parentPID(t, proc.Child.Pid()))
}
