// Package backend starts the bundled Flask backend as a sidecar of the shell.
//
// Setup is registered as the shell's setup hook. Development builds expect
// the developer to run the backend by hand and do nothing else. Release
// builds resolve the per-user data directory, create it, spawn the sidecar
// with that directory and the fixed port, and retain the child on the App so
// it lives as long as the shell. The child is not supervised: if it exits,
// the shell keeps running. Its output goes wherever the App's launcher sends
// it, which by default is nowhere, so the backend can keep writing after the
// shell is gone.
package backend

import (
	"fmt"
	"strconv"

	"github.com/grovetools/jobpilot/config"
	"github.com/grovetools/jobpilot/errors"
	"github.com/grovetools/jobpilot/logging"
	"github.com/grovetools/jobpilot/pkg/paths"
	"github.com/grovetools/jobpilot/pkg/sidecar"
	"github.com/grovetools/jobpilot/shell"
	"github.com/sirupsen/logrus"
)

const (
	// SidecarName is the logical name of the bundled backend binary.
	SidecarName = "flask-backend"
	// Port is the TCP port the backend listens on. There is no fallback.
	Port uint16 = 5000
)

// Stage is a step of the startup state machine.
type Stage string

const (
	StageStart         Stage = "start"
	StageResolvingPath Stage = "resolving-path"
	StageEnsuringDir   Stage = "ensuring-dir"
	StageSpawning      Stage = "spawning"
	StageRunning       Stage = "running"
	StageDevDone       Stage = "dev-done"
	StageFailed        Stage = "failed"
)

// Process is the running backend. It is managed on the shell.App so the
// child handle stays reachable until the shell exits.
type Process struct {
	Child   *sidecar.Child
	Output  *sidecar.Receiver
	DataDir string
	Port    uint16
}

// Args returns the backend's argument vector for dataDir.
func Args(dataDir string) []string {
	return []string{"--data-dir", dataDir, "--port", strconv.Itoa(int(Port))}
}

// URL returns the address the frontend uses to reach the backend.
func URL(host string) string {
	if host == "" {
		host = config.DefaultBackendHost
	}
	return fmt.Sprintf("http://%s:%d", host, Port)
}

// Setup is the shell setup hook that starts the backend.
func Setup(app *shell.App) error {
	s := &starter{
		app:    app,
		logger: logging.NewLogger("backend"),
		stage:  StageStart,
	}
	return s.run()
}

type starter struct {
	app    *shell.App
	logger *logrus.Entry
	stage  Stage
}

func (s *starter) run() error {
	if s.app.Mode.IsDevelopment() {
		s.stage = StageDevDone
		s.logger.Warnf("Development build: start the backend manually on port %d (uv run python main.py)", Port)
		return nil
	}

	if _, running := shell.State[*Process](s.app); running {
		return s.fail(errors.New(errors.ErrCodeInternal, "backend already started for this shell"))
	}

	s.stage = StageResolvingPath
	dir, err := s.app.Paths.AppDataDir()
	if err != nil {
		return s.fail(err)
	}

	s.stage = StageEnsuringDir
	dataDir, err := paths.EnsureDir(dir)
	if err != nil {
		return s.fail(err)
	}

	s.stage = StageSpawning
	rx, child, err := s.app.Sidecars.Spawn(SidecarName, Args(dataDir)...)
	if err != nil {
		return s.fail(err)
	}

	// Retained for the App's lifetime; never released or killed here.
	shell.Manage(s.app, &Process{
		Child:   child,
		Output:  rx,
		DataDir: dataDir,
		Port:    Port,
	})

	s.stage = StageRunning
	s.logger.WithFields(logrus.Fields{
		"data_dir": dataDir,
		"pid":      child.Pid(),
		"url":      URL(s.app.Manifest.Backend.Host),
	}).Info("Backend sidecar started")
	return nil
}

// fail records the failing stage on err and moves to StageFailed.
func (s *starter) fail(err error) error {
	step := s.stage
	s.stage = StageFailed

	shellErr, ok := errors.As(err)
	if !ok {
		shellErr = errors.Wrap(err, errors.ErrCodeInternal, "backend startup failed")
	}
	return shellErr.WithDetail("step", string(step))
}
