package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/grovetools/jobpilot/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageNamesFailingStep(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "path unavailable",
			err:  errors.PathUnavailable("home directory could not be discovered", nil).WithDetail("step", "resolving-path"),
			want: []string{"[resolving-path]", "per-user data directory"},
		},
		{
			name: "directory create failed",
			err:  errors.DirectoryCreateFailed("/ro/com.jobpilot.app", fmt.Errorf("permission denied")).WithDetail("step", "ensuring-dir"),
			want: []string{"[ensuring-dir]", "/ro/com.jobpilot.app", "permission denied"},
		},
		{
			name: "binary not found",
			err:  fmt.Errorf("setup hook 0: %w", errors.BinaryNotFound("flask-backend", nil).WithDetail("step", "spawning")),
			want: []string{"[spawning]", "flask-backend", "missing"},
		},
		{
			name: "spawn failed",
			err:  errors.SpawnFailed("/opt/jobpilot/flask-backend", fmt.Errorf("exec format error")),
			want: []string{"could not start /opt/jobpilot/flask-backend", "exec format error"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message(tt.err)
			for _, w := range tt.want {
				assert.Contains(t, msg, w)
			}
		})
	}
}

func TestMessageOmitsWrapping(t *testing.T) {
	err := fmt.Errorf("setup hook 0: %w",
		errors.PathUnavailable("home directory could not be discovered", nil).WithDetail("step", "resolving-path"))

	msg := Message(err)
	assert.Equal(t, "Startup failed [resolving-path]: per-user data directory unavailable: home directory could not be discovered", msg)
	assert.NotContains(t, msg, "setup hook")
	assert.NotContains(t, msg, string(errors.ErrCodePathUnavailable))
}

func TestHandleReturnsExitCode(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Out: &buf}

	assert.Equal(t, 0, h.Handle(nil))
	assert.Empty(t, buf.String())

	code := h.Handle(errors.BinaryNotFound("flask-backend", nil))
	assert.Equal(t, errors.ExitCode(errors.BinaryNotFound("x", nil)), code)
	assert.NotZero(t, code)
	assert.Contains(t, buf.String(), "flask-backend")
}

func TestHandleVerboseIncludesDetails(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Out: &buf, Verbose: true}

	h.Handle(errors.BinaryNotFound("flask-backend", []string{"/opt/jobpilot/flask-backend"}))
	assert.Contains(t, buf.String(), `"code": "BINARY_NOT_FOUND"`)
	assert.Contains(t, buf.String(), "/opt/jobpilot/flask-backend")
}

func TestStandardCommandFlags(t *testing.T) {
	cmd := NewStandardCommand("jobpilot", "JobPilot desktop shell")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs([]string{"--verbose", "--json"})
	require.NoError(t, cmd.Execute())

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.JSONOutput)
}

func TestStyledHelpListsCommands(t *testing.T) {
	root := NewStandardCommand("jobpilot", "JobPilot desktop shell")
	root.AddCommand(&cobra.Command{Use: "paths", Short: "Print resolved directories", Run: func(*cobra.Command, []string) {}})

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "JobPilot desktop shell")
	assert.Contains(t, out, "USAGE")
	assert.Contains(t, out, "paths")
	assert.Contains(t, out, "--verbose")
}

func TestVersionCommandJSON(t *testing.T) {
	root := NewStandardCommand("jobpilot", "JobPilot desktop shell")
	root.AddCommand(NewVersionCommand("jobpilot"))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), `"mode":`)
}
