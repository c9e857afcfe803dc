// Package errs defines the typed error taxonomy shared by every service.
// Errors are raised at the point of detection and travel unmodified to the
// HTTP boundary, where utils.HandleError maps each code to a status.
package errs

import (
	"errors"
	"fmt"
)

// Code identifies one failure class.
type Code int

const (
	CodeResourceNotFound Code = iota + 1001
	CodeFileNotFound
	CodeFailedToUpdate
	CodeFailedToDelete
	CodeFailedToCompress
	CodeDirectoryCreation
	CodeStorageInitialization
	CodeFolderAlreadyExists
	CodeUnsupported
	CodeFileReading
	CodeFileStorage
	CodeLimitExceeding
)

// Error carries a failure class, a caller-facing message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a new error.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the failure class from err, or 0 when err is untyped.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
