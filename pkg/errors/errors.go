// Package errors provides the structured error type used across deskfile.
// Every error carries a stable code so callers and tests can branch on
// kind without string matching, plus a detail map for context such as the
// source line number or the offending group and key.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error kind for stable matching
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Structural errors raised while parsing a desktop entry file.
	// These always carry a "line" detail with the 1-based line number.
	ErrEmptyGroupName       ErrorCode = "EMPTY_GROUP_NAME"
	ErrDuplicateGroup       ErrorCode = "DUPLICATE_GROUP"
	ErrInvalidFirstGroup    ErrorCode = "INVALID_FIRST_GROUP"
	ErrKeyValueOutsideGroup ErrorCode = "KEY_VALUE_OUTSIDE_GROUP"
	ErrMalformedLine        ErrorCode = "MALFORMED_LINE"
	ErrMissingRequiredGroup ErrorCode = "MISSING_REQUIRED_GROUP"

	// Validation errors raised while mutating an entry. These carry
	// "group" and "key" details.
	ErrInvalidKey       ErrorCode = "INVALID_KEY"
	ErrInvalidPathValue ErrorCode = "INVALID_PATH_VALUE"

	// Exec grammar errors
	ErrUnterminatedQuote ErrorCode = "UNTERMINATED_QUOTE"
	ErrUnknownFieldCode  ErrorCode = "UNKNOWN_FIELD_CODE"
	ErrEmptyExec         ErrorCode = "EMPTY_EXEC"

	// Launch errors
	ErrLaunchFailed   ErrorCode = "LAUNCH_FAILED"
	ErrExecNotAllowed ErrorCode = "EXEC_NOT_ALLOWED"
	ErrNotLaunchable  ErrorCode = "NOT_LAUNCHABLE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// DeskfileError represents a structured error with code and details
type DeskfileError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DeskfileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DeskfileError) Unwrap() error {
	return e.Wrapped
}

// Is matches two DeskfileErrors by code
func (e *DeskfileError) Is(target error) bool {
	var targetErr *DeskfileError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DeskfileError with the given code and message
func New(code ErrorCode, message string) *DeskfileError {
	return &DeskfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DeskfileError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DeskfileError {
	return &DeskfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DeskfileError
func Wrap(err error, code ErrorCode, message string) *DeskfileError {
	if err == nil {
		return nil
	}
	return &DeskfileError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DeskfileError {
	if err == nil {
		return nil
	}
	return &DeskfileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DeskfileError) WithDetail(key string, value interface{}) *DeskfileError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithLine records the 1-based source line an error was raised at
func (e *DeskfileError) WithLine(line int) *DeskfileError {
	return e.WithDetail("line", line)
}

// Line returns the recorded source line, or 0 if none was set
func (e *DeskfileError) Line() int {
	if n, ok := e.Details["line"].(int); ok {
		return n
	}
	return 0
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dErr *DeskfileError
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DeskfileError
func GetErrorCode(err error) ErrorCode {
	var dErr *DeskfileError
	if errors.As(err, &dErr) {
		return dErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DeskfileError
func GetErrorDetails(err error) map[string]interface{} {
	var dErr *DeskfileError
	if errors.As(err, &dErr) {
		return dErr.Details
	}
	return nil
}
