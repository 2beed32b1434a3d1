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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Invocation and configuration errors
	ErrConfig      ErrorCode = "CONFIG"
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Container errors
	ErrContainerParse  ErrorCode = "CONTAINER_PARSE"
	ErrContainerEncode ErrorCode = "CONTAINER_ENCODE"
	ErrEntryDecode     ErrorCode = "ENTRY_DECODE"
	ErrEmptyResult     ErrorCode = "EMPTY_RESULT"

	// FileSystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ConvertError represents a structured error with code and details
type ConvertError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConvertError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConvertError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConvertError) Is(target error) bool {
	var targetErr *ConvertError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConvertError with the given code and message
func New(code ErrorCode, message string) *ConvertError {
	return &ConvertError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConvertError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConvertError {
	return &ConvertError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConvertError
func Wrap(err error, code ErrorCode, message string) *ConvertError {
	if err == nil {
		return nil
	}
	return &ConvertError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConvertError {
	if err == nil {
		return nil
	}
	return &ConvertError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConvertError) WithDetail(key string, value interface{}) *ConvertError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var convErr *ConvertError
	if errors.As(err, &convErr) {
		return convErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConvertError
func GetErrorCode(err error) ErrorCode {
	var convErr *ConvertError
	if errors.As(err, &convErr) {
		return convErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConvertError
func GetErrorDetails(err error) map[string]interface{} {
	var convErr *ConvertError
	if errors.As(err, &convErr) {
		return convErr.Details
	}
	return nil
}
