// Package errors provides structured error types for interactive-grid.
//
// This package defines error codes and types that enable:
//   - Fail-fast reporting of caller contract violations in the grid core
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages in the CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - INDEX_OUT_OF_RANGE, EMPTY_SEQUENCE, DUPLICATE_IDENTITY: grid contract violations
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// Contract violations are programmer errors. Callers should fix their index
// bookkeeping instead of retrying; every grid operation is deterministic.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIndexOutOfRange, "drop index %d outside [0, %d)", i, n)
//	if errors.Is(err, errors.ErrCodeIndexOutOfRange) {
//	    // Handle contract violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Grid contract violations
	ErrCodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"
	ErrCodeEmptySequence     Code = "EMPTY_SEQUENCE"
	ErrCodeDuplicateIdentity Code = "DUPLICATE_IDENTITY"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidScenario Code = "INVALID_SCENARIO"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidState    Code = "INVALID_STATE"

	// Resource not found errors
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodePresetNotFound Code = "PRESET_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsContractViolation reports whether err is one of the grid core's
// caller-contract errors (index out of range, empty sequence, duplicate identity).
func IsContractViolation(err error) bool {
	switch GetCode(err) {
	case ErrCodeIndexOutOfRange, ErrCodeEmptySequence, ErrCodeDuplicateIdentity:
		return true
	}
	return false
}
