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

	// Configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigValid  ErrorCode = "CONFIG_INVALID"
	ErrParentSpec   ErrorCode = "PARENT_SPEC"
	ErrAttachTarget ErrorCode = "ATTACH_TARGET"

	// Graph snapshot errors
	ErrGraphLoad    ErrorCode = "GRAPH_LOAD"
	ErrGraphParse   ErrorCode = "GRAPH_PARSE"
	ErrGraphInvalid ErrorCode = "GRAPH_INVALID"

	// Collaborator I/O errors
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrAttachRecord ErrorCode = "ATTACH_RECORD"
)

var configurationCodes = map[ErrorCode]bool{
	ErrConfigLoad:   true,
	ErrConfigParse:  true,
	ErrConfigValid:  true,
	ErrParentSpec:   true,
	ErrAttachTarget: true,
}

var ioCodes = map[ErrorCode]bool{
	ErrFileWrite:    true,
	ErrDirCreate:    true,
	ErrAttachRecord: true,
}

// BomError represents a structured error with code and details
type BomError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BomError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BomError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BomError) Is(target error) bool {
	var targetErr *BomError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BomError with the given code and message
func New(code ErrorCode, message string) *BomError {
	return &BomError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BomError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BomError {
	return &BomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BomError
func Wrap(err error, code ErrorCode, message string) *BomError {
	if err == nil {
		return nil
	}
	return &BomError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BomError {
	if err == nil {
		return nil
	}
	return &BomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BomError) WithDetail(key string, value interface{}) *BomError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bomErr *BomError
	if errors.As(err, &bomErr) {
		return bomErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BomError
func GetErrorCode(err error) ErrorCode {
	var bomErr *BomError
	if errors.As(err, &bomErr) {
		return bomErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BomError
func GetErrorDetails(err error) map[string]interface{} {
	var bomErr *BomError
	if errors.As(err, &bomErr) {
		return bomErr.Details
	}
	return nil
}

// IsConfigurationError reports whether err aborts a run because of bad
// configuration: a malformed parent spec, an invalid attach target or an
// unreadable or invalid config.
func IsConfigurationError(err error) bool {
	return configurationCodes[GetErrorCode(err)]
}

// IsIOError reports whether err comes from persisting the manifest or
// recording its attachment.
func IsIOError(err error) bool {
	return ioCodes[GetErrorCode(err)]
}
