// Package sidecar spawns binaries bundled next to the shell executable.
//
// A sidecar is addressed by its logical name (for example "flask-backend").
// The Launcher maps that name to a file in its directory, accounting for the
// platform executable suffix and the target-triple naming used by the
// bundler, then starts it without waiting. Output is forwarded to a Receiver
// that may be ignored.
package sidecar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/grovetools/jobpilot/command"
	"github.com/grovetools/jobpilot/errors"
	"github.com/grovetools/jobpilot/logging"
	"github.com/sirupsen/logrus"
)

// Stdio selects where a sidecar's standard output and error go.
type Stdio int

const (
	// StdioDiscard connects both streams to the null device. The child
	// never writes into a pipe that dies with the shell.
	StdioDiscard Stdio = iota
	// StdioInherit shares the shell's own stdout and stderr.
	StdioInherit
	// StdioCapture pipes both streams into the Receiver line by line. The
	// pipes close when the shell exits, so a child that outlives the shell
	// and keeps writing gets EPIPE or SIGPIPE. Use it only for children
	// that do not outlive their reader.
	StdioCapture
)

func (s Stdio) String() string {
	switch s {
	case StdioDiscard:
		return "discard"
	case StdioInherit:
		return "inherit"
	case StdioCapture:
		return "capture"
	}
	return "unknown"
}

// Launcher resolves and spawns bundled sidecars.
type Launcher struct {
	// Dir is the directory holding the bundled binaries.
	Dir string
	// Declared lists the sidecar names the bundle ships. Anything else is refused.
	Declared []string
	// Stdio routes the child's output. The zero value discards it.
	Stdio Stdio
	// BufferSize is the capacity of each Receiver. Zero means DefaultBufferSize.
	BufferSize int

	builder *command.SafeBuilder
	logger  *logrus.Entry
}

// NewLauncher creates a Launcher that looks for the declared sidecars in dir.
func NewLauncher(dir string, declared []string) *Launcher {
	return &Launcher{
		Dir:      dir,
		Declared: declared,
		builder:  command.NewSafeBuilder(),
		logger:   logging.NewLogger("sidecar"),
	}
}

// WithExecutor replaces the command executor, typically in tests.
func (l *Launcher) WithExecutor(exec command.Executor) *Launcher {
	l.builder = command.NewSafeBuilderWithExecutor(exec)
	return l
}

// DefaultDir returns the directory of the running executable, which is where
// the bundler places sidecars.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "failed to locate the shell executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Candidates returns the paths probed for name, in order.
func (l *Launcher) Candidates(name string) []string {
	suffix := ExeSuffix()
	return []string{
		filepath.Join(l.Dir, name+suffix),
		filepath.Join(l.Dir, name+"-"+TargetTriple()+suffix),
	}
}

// Resolve maps a logical sidecar name to an executable on disk.
func (l *Launcher) Resolve(name string) (string, error) {
	if err := l.builder.Validate("binaryName", name); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid sidecar name").
			WithDetail("binary", name)
	}
	if !slices.Contains(l.Declared, name) {
		return "", errors.SidecarNotDeclared(name)
	}

	candidates := l.Candidates(name)
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return candidate, nil
	}
	return "", errors.BinaryNotFound(name, candidates)
}

// Spawn starts the named sidecar with args and returns immediately. The
// child keeps running after the returned handle goes out of scope, and it
// runs in its own process group so a terminal interrupt aimed at the shell
// does not reach it. Unless Stdio is StdioCapture, the Receiver only ever
// carries the Terminated event.
func (l *Launcher) Spawn(name string, args ...string) (*Receiver, *Child, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	cmd, err := l.builder.Build(path, args...)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid sidecar invocation").
			WithDetail("binary", name)
	}

	c := cmd.Exec()
	detach(c)

	var stdout, stderr io.ReadCloser
	switch l.Stdio {
	case StdioCapture:
		if stdout, err = c.StdoutPipe(); err != nil {
			return nil, nil, errors.SpawnFailed(path, err)
		}
		if stderr, err = c.StderrPipe(); err != nil {
			return nil, nil, errors.SpawnFailed(path, err)
		}
	case StdioInherit:
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	default:
		// os/exec opens the null device for nil streams.
		c.Stdout = nil
		c.Stderr = nil
	}

	if err := c.Start(); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.BinaryNotFound(name, []string{path})
		}
		return nil, nil, errors.SpawnFailed(path, err)
	}

	rx := newReceiver(l.BufferSize)
	child := &Child{
		cmd:  c,
		path: path,
		args: cmd.Args(),
		done: make(chan struct{}),
	}

	l.logger.WithFields(logrus.Fields{
		"binary": name,
		"path":   path,
		"pid":    child.Pid(),
		"stdio":  l.Stdio.String(),
	}).Debug("Spawned sidecar")

	var readers sync.WaitGroup
	if l.Stdio == StdioCapture {
		readers.Add(2)
		go forward(&readers, stdout, Stdout, rx)
		go forward(&readers, stderr, Stderr, rx)
	}
	go l.reap(&readers, child, rx)

	return rx, child, nil
}

// forward copies r line by line into rx until EOF.
func forward(wg *sync.WaitGroup, r io.Reader, kind EventKind, rx *Receiver) {
	defer wg.Done()

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			rx.send(Event{Kind: kind, Line: trimNewline(line)})
		}
		if err != nil {
			if err != io.EOF {
				rx.send(Event{Kind: Error, Err: fmt.Errorf("read %s: %w", kind, err)})
			}
			return
		}
	}
}

// reap waits for the child once both streams are drained, as exec.Cmd requires.
func (l *Launcher) reap(readers *sync.WaitGroup, child *Child, rx *Receiver) {
	readers.Wait()
	err := child.cmd.Wait()

	status := exitStatus(child.cmd.ProcessState)
	l.logger.WithFields(logrus.Fields{
		"pid":  child.Pid(),
		"code": status.Code,
	}).WithError(err).Debug("Sidecar exited")

	child.setExited(status)
	rx.finish(status)
}

func exitStatus(state *os.ProcessState) ExitStatus {
	if state == nil {
		return ExitStatus{Code: -1}
	}
	status := ExitStatus{Code: state.ExitCode()}
	if sig := signalOf(state); sig != "" {
		status.Signal = sig
	}
	return status
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}
