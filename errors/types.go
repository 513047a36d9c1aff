package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Startup errors. Every one of these aborts the shell.
	ErrCodePathUnavailable       ErrorCode = "PATH_UNAVAILABLE"
	ErrCodeDirectoryCreateFailed ErrorCode = "DIRECTORY_CREATE_FAILED"
	ErrCodeBinaryNotFound        ErrorCode = "BINARY_NOT_FOUND"
	ErrCodeSpawnFailed           ErrorCode = "SPAWN_FAILED"
	ErrCodeSidecarNotDeclared    ErrorCode = "SIDECAR_NOT_DECLARED"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ShellError represents a structured error with context
type ShellError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ShellError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ShellError) WithDetail(key string, value interface{}) *ShellError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ShellError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ShellError
func New(code ErrorCode, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ShellError
func Wrap(err error, code ErrorCode, message string) *ShellError {
	return &ShellError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As returns the first ShellError in err's chain.
func As(err error) (*ShellError, bool) {
	for err != nil {
		if shellErr, ok := err.(*ShellError); ok {
			return shellErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific ShellError code
func Is(err error, code ErrorCode) bool {
	shellErr, ok := As(err)
	if !ok {
		return false
	}
	return shellErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	shellErr, ok := As(err)
	if !ok {
		return ""
	}
	return shellErr.Code
}
