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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Path errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"

	// Document errors
	ErrDocumentLoad  ErrorCode = "DOCUMENT_LOAD"
	ErrDocumentWatch ErrorCode = "DOCUMENT_WATCH"

	// Transform errors
	ErrTransform   ErrorCode = "TRANSFORM"
	ErrRunInFlight ErrorCode = "RUN_IN_FLIGHT"
	ErrNoDocument  ErrorCode = "NO_DOCUMENT"

	// Scheduling errors. STALE_STATE never reaches the user.
	ErrStaleState ErrorCode = "STALE_STATE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// XsltviewError represents a structured error with code and details
type XsltviewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *XsltviewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *XsltviewError) Unwrap() error {
	return e.Wrapped
}

// Is matches any XsltviewError carrying the same code.
func (e *XsltviewError) Is(target error) bool {
	var targetErr *XsltviewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new XsltviewError with the given code and message
func New(code ErrorCode, message string) *XsltviewError {
	return &XsltviewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new XsltviewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *XsltviewError {
	return &XsltviewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *XsltviewError {
	if err == nil {
		return nil
	}
	return &XsltviewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *XsltviewError {
	if err == nil {
		return nil
	}
	return &XsltviewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *XsltviewError) WithDetail(key string, value interface{}) *XsltviewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var xerr *XsltviewError
	if errors.As(err, &xerr) {
		return xerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if it is not an XsltviewError
func GetErrorCode(err error) ErrorCode {
	var xerr *XsltviewError
	if errors.As(err, &xerr) {
		return xerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var xerr *XsltviewError
	if errors.As(err, &xerr) {
		return xerr.Details
	}
	return nil
}
