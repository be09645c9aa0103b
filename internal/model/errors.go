package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// ExitCode defines the CLI exit codes. These codes allow scripts to
// distinguish a bad command line from a failure while producing output.
type ExitCode int

const (
	// ExitSuccess indicates the command completed. Per-file open and read
	// failures are reported on stderr but still end with ExitSuccess.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unrecoverable runtime error, such as a
	// failure to write to standard output.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates the command line was rejected before any
	// file was opened.
	ExitUsageError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// ConflictingFlagsError reports two flags that cannot be combined.
type ConflictingFlagsError struct {
	First  string
	Second string
}

// Error names both flags so the user can see which pair collided.
func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("the argument %s cannot be used with %s", e.First, e.Second)
}

// UsageError wraps a flag parsing failure (unknown flag, missing value, ...).
type UsageError struct {
	Err error
}

// Error returns the parser's diagnostic unchanged.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying flag parsing error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps err as a UsageError. A nil err yields nil.
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// ErrInvalidUTF8 is returned by line readers when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileOpenError reports an input that could not be opened. The emitter
// recovers from it by skipping the file.
type FileOpenError struct {
	Name string
	Err  error
}

// Error renders "Failed to open <name>: <cause>". The *fs.PathError wrapper
// is peeled off the cause since it would repeat the file name.
func (e *FileOpenError) Error() string {
	return fmt.Sprintf("Failed to open %s: %v", e.Name, pathCause(e.Err))
}

// Unwrap returns the filesystem error, so errors.Is(err, fs.ErrNotExist)
// and similar checks work.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// ReadError reports a failure while streaming an already-open input.
// Line is the 1-based physical line that could not be read.
type ReadError struct {
	Name string
	Line int
	Err  error
}

// Error renders "Failed to read <name>: line <n>: <cause>".
func (e *ReadError) Error() string {
	return fmt.Sprintf("Failed to read %s: line %d: %v", e.Name, e.Line, pathCause(e.Err))
}

// Unwrap returns the underlying read or decode error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// pathCause strips a *fs.PathError wrapper and returns its inner error.
// Any other error is returned as-is.
func pathCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil {
		return pathErr.Err
	}
	return err
}
