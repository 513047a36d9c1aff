package command

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var binaryNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// SafeBuilder validates sidecar invocations before they reach the OS.
type SafeBuilder struct {
	validators map[string]func(string) error
	executor   Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	if exec == nil {
		exec = &RealExecutor{}
	}
	return &SafeBuilder{
		validators: makeDefaultValidators(),
		executor:   exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"binaryName": ValidateBinaryName,
		"argument":   validateArgument,
	}
}

// ValidateBinaryName ensures a sidecar logical name is a bare file name.
func ValidateBinaryName(name string) error {
	if name == "" {
		return fmt.Errorf("binary name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("binary name cannot contain path separators: %s", name)
	}
	if !binaryNameRegex.MatchString(name) {
		return fmt.Errorf("invalid binary name: %s", name)
	}
	return nil
}

// validateArgument rejects values the OS cannot pass through argv.
// Arguments never go through a shell, so metacharacters are allowed.
func validateArgument(arg string) error {
	if strings.ContainsRune(arg, 0) {
		return fmt.Errorf("argument contains a NUL byte")
	}
	return nil
}

// Command is a validated invocation of an on-disk executable.
type Command struct {
	path     string
	args     []string
	executor Executor
}

// Build creates a new command with validation. path is the resolved
// executable; args is the ordered argument vector.
func (sb *SafeBuilder) Build(path string, args ...string) (*Command, error) {
	if path == "" {
		return nil, fmt.Errorf("command path cannot be empty")
	}
	for i, arg := range args {
		if err := sb.Validate("argument", arg); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return &Command{
		path:     path,
		args:     append([]string(nil), args...),
		executor: sb.executor,
	}, nil
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Path returns the executable path.
func (c *Command) Path() string { return c.path }

// Args returns a copy of the argument vector, excluding the program name.
func (c *Command) Args() []string { return append([]string(nil), c.args...) }

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	return c.executor.Command(c.path, c.args...) //nolint:gosec // SafeBuilder provides validation
}
