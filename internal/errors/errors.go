package errors

import (
	"errors"
	"fmt"
)

// Exit codes for forage-build
const (
	ExitSuccess                  = 0
	ExitGeneralError             = 1
	ExitUnknownProjectType       = 2
	ExitMissingStartCommand      = 3
	ExitMissingBuildOutput       = 4
	ExitMissingExecutable        = 5
	ExitUnsupportedProjectType   = 6
	ExitUnsupportedConfiguration = 7
	ExitConfigError              = 8
	ExitScriptWriteFailed        = 9
)

// ForageError is the base error type for forage-build
type ForageError struct {
	Code    int
	Message string
	Cause   error
}

func (e *ForageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ForageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ForageError) ExitCode() int {
	return e.Code
}

// New creates a new ForageError
func New(code int, message string) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ForageError
func Wrap(code int, message string, cause error) *ForageError {
	return &ForageError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// UnknownProjectType returns an error for a folder no classifier rule matched
func UnknownProjectType(folder string) *ForageError {
	return New(ExitUnknownProjectType, fmt.Sprintf("unknown project type in %s", folder))
}

// MissingStartCommand returns an error for a node project with no start invocation
func MissingStartCommand(folder string) *ForageError {
	return New(ExitMissingStartCommand, fmt.Sprintf("missing scripts.start in: %s/package.json", folder))
}

// MissingBuildOutput returns an error for an absent post-build directory
func MissingBuildOutput(folder, message string) *ForageError {
	return New(ExitMissingBuildOutput, fmt.Sprintf("%s in %s", message, folder))
}

// MissingExecutable returns an error for an absent post-build executable
func MissingExecutable(path string) *ForageError {
	return New(ExitMissingExecutable, fmt.Sprintf("missing executable: %s", path))
}

// UnsupportedProjectType returns an error for a recognized type without a strategy
func UnsupportedProjectType(projectType, message string) *ForageError {
	return New(ExitUnsupportedProjectType, fmt.Sprintf("%s (project type %s)", message, projectType))
}

// UnsupportedConfiguration returns an error for a recognized but refused setup
func UnsupportedConfiguration(message string) *ForageError {
	return New(ExitUnsupportedConfiguration, message)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ForageError {
	return Wrap(ExitConfigError, message, cause)
}

// FolderError returns an error for project folder access failures
func FolderError(op string, cause error) *ForageError {
	return Wrap(ExitGeneralError, fmt.Sprintf("folder %s failed", op), cause)
}

// ManifestError returns an error for an unreadable or malformed manifest
func ManifestError(path string, cause error) *ForageError {
	return Wrap(ExitGeneralError, fmt.Sprintf("failed to parse %s", path), cause)
}

// ScriptWriteFailed returns an error for build script materialization failures
func ScriptWriteFailed(folder string, cause error) *ForageError {
	return Wrap(ExitScriptWriteFailed, fmt.Sprintf("failed to write build script in %s", folder), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ForageError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var forageErr *ForageError
	if errors.As(err, &forageErr) {
		return forageErr.ExitCode()
	}
	return ExitGeneralError
}

// HasCode reports whether err's chain holds a ForageError with the given code
func HasCode(err error, code int) bool {
	var forageErr *ForageError
	if errors.As(err, &forageErr) {
		return forageErr.Code == code
	}
	return false
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
