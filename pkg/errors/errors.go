package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Table errors
	ErrArityMismatch ErrorCode = "ARITY_MISMATCH"
	ErrNoColumns     ErrorCode = "NO_COLUMNS"

	// Box style errors
	ErrBoxInvalid  ErrorCode = "BOX_INVALID"
	ErrBoxNotFound ErrorCode = "BOX_NOT_FOUND"

	// Style errors
	ErrStyleFormat  ErrorCode = "STYLE_FORMAT"
	ErrStyleUnknown ErrorCode = "STYLE_UNKNOWN_NAME"
)

// GriddleError represents a structured error with code and details
type GriddleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GriddleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GriddleError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GriddleError) Is(target error) bool {
	var targetErr *GriddleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GriddleError with the given code and message
func New(code ErrorCode, message string) *GriddleError {
	return &GriddleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GriddleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GriddleError {
	return &GriddleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GriddleError
func Wrap(err error, code ErrorCode, message string) *GriddleError {
	if err == nil {
		return nil
	}
	return &GriddleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GriddleError {
	if err == nil {
		return nil
	}
	return &GriddleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GriddleError) WithDetail(key string, value interface{}) *GriddleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var griddleErr *GriddleError
	if errors.As(err, &griddleErr) {
		return griddleErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GriddleError
func GetErrorCode(err error) ErrorCode {
	var griddleErr *GriddleError
	if errors.As(err, &griddleErr) {
		return griddleErr.Code
	}
	return ErrUnknown
}
