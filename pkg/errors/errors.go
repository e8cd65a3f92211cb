// Package errors provides structured error types for the cutsheet application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The parser and transformation engine each raise a fixed set of codes, so
// callers can discriminate failure causes without string matching:
//   - SYNTAX_*, UNDEFINED_*, DUPLICATE_*: EGIF parsing failures
//   - STRUCTURAL_*, ILLEGAL_*, INVALID_CUT_*: transformation preconditions
//   - ELEMENT_NOT_FOUND: a referenced element id does not exist
//   - INVALID_*, NOT_FOUND, INTERNAL: shell-level failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSyntax, "unmatched bracket at offset %d", off)
//	if errors.Is(err, errors.ErrCodeSyntax) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "render %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// EGIF parsing errors
	ErrCodeSyntax              Code = "SYNTAX_ERROR"
	ErrCodeUndefinedVariable   Code = "UNDEFINED_VARIABLE"
	ErrCodeDuplicateDefinition Code = "DUPLICATE_DEFINITION"

	// Transformation errors
	ErrCodeStructuralSelection Code = "STRUCTURAL_SELECTION"
	ErrCodeIllegalContext      Code = "ILLEGAL_CONTEXT"
	ErrCodeInvalidCutStructure Code = "INVALID_CUT_STRUCTURE"

	// Element lookup errors
	ErrCodeElementNotFound Code = "ELEMENT_NOT_FOUND"

	// Shell-level errors (CLI, HTTP, corpus)
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidRule   Code = "INVALID_RULE"
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
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
