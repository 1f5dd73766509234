// Package errors provides structured error types for the untangle core.
//
// This package defines error codes and types that enable:
//   - Consistent error handling between the core packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages for re-prompting
//   - Error wrapping with context preservation
//
// All coded errors are locally recoverable by the caller: a rejected
// description or move leaves the previous state current. Internal
// consistency violations (a self-loop edge, a non-positive denominator)
// are deliberately not represented here - those panic, because they break
// the exactness assumptions of the crossing predicate.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidParams, "number of points must be at least %d", 4)
//	if errors.Is(err, errors.ErrCodeInvalidParams) {
//	    // Re-prompt for parameters
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the puzzle core.
const (
	// ErrCodeInvalidParams marks rejected puzzle parameters (n < 4).
	ErrCodeInvalidParams Code = "INVALID_PARAMS"

	// ErrCodeDescSyntax marks a malformed edge-list token in a puzzle
	// description (bad separator, trailing garbage, self-loop, duplicate).
	ErrCodeDescSyntax Code = "DESC_SYNTAX"

	// ErrCodeDescRange marks a vertex index outside [0, n) in a puzzle
	// description.
	ErrCodeDescRange Code = "DESC_RANGE"

	// ErrCodeMoveSyntax marks a malformed move token. The whole move
	// application fails; no partial mutation survives.
	ErrCodeMoveSyntax Code = "MOVE_SYNTAX"

	// ErrCodeNoSolution marks a solve request on a puzzle with no
	// recorded auxiliary solution. The engine has no independent solver.
	ErrCodeNoSolution Code = "NO_SOLUTION"

	// ErrCodeInvalidConfig marks an unusable settings file or value.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// ErrCodeInternal marks unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
