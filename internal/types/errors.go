package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for project-graph errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// Routing error codes. These drive the router's fallback policy: every
// recoverable code is converted into a routing decision at the router
// boundary instead of surfacing to the caller.
const (
	BANK_LOAD_FAILED ErrorCode = "BANK_LOAD_FAILED"
	EMBEDDING_FAILED ErrorCode = "EMBEDDING_FAILED"
	EXECUTION_FAILED ErrorCode = "EXECUTION_FAILED"
	FALLBACK_FAILED  ErrorCode = "FALLBACK_FAILED"
	BINDING_FAILED   ErrorCode = "BINDING_FAILED"
)

// ProjectError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints.
type ProjectError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *ProjectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *ProjectError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a ProjectError with the same Code.
func (e *ProjectError) Is(target error) bool {
	var perr *ProjectError
	if errors.As(target, &perr) {
		return e.Code == perr.Code
	}
	return false
}

// NewError creates a new non-retryable ProjectError with the given code and message.
func NewError(code ErrorCode, message string) *ProjectError {
	return &ProjectError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable ProjectError with the given code
// and message. Use this for transient errors that may succeed on retry.
func NewRetryableError(code ErrorCode, message string) *ProjectError {
	return &ProjectError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable ProjectError that wraps an existing
// error. The wrapped error is accessible via Unwrap() for chain inspection.
func WrapError(code ErrorCode, message string, cause error) *ProjectError {
	return &ProjectError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) a ProjectError.
// Returns an empty code when err carries no ProjectError.
func CodeOf(err error) ErrorCode {
	var perr *ProjectError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}
