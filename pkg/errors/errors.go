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

	// Directive errors
	ErrConfigMissingAttr ErrorCode = "CONFIG_MISSING_ATTR"
	ErrSourceNotFound    ErrorCode = "SOURCE_NOT_FOUND"
	ErrPathEscape        ErrorCode = "PATH_ESCAPE"
	ErrAlreadyExists     ErrorCode = "ALREADY_EXISTS"

	// Manifest errors
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"

	// Configuration file errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileCreate    ErrorCode = "FILE_CREATE"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// PlugsetError represents a structured error with code and details
type PlugsetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PlugsetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PlugsetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PlugsetError) Is(target error) bool {
	var targetErr *PlugsetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PlugsetError with the given code and message
func New(code ErrorCode, message string) *PlugsetError {
	return &PlugsetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PlugsetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PlugsetError {
	return &PlugsetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PlugsetError
func Wrap(err error, code ErrorCode, message string) *PlugsetError {
	if err == nil {
		return nil
	}
	return &PlugsetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PlugsetError {
	if err == nil {
		return nil
	}
	return &PlugsetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PlugsetError) WithDetail(key string, value interface{}) *PlugsetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// MissingAttr builds the configuration error raised when a directive lacks a
// required attribute. It carries the attribute, directive kind and plugin id
// so the failure can be traced back to the offending plugin.xml element.
func MissingAttr(attr, kind, pluginID string) *PlugsetError {
	return Newf(ErrConfigMissingAttr,
		"<%s> tag is missing the %q attribute (plugin %s)", kind, attr, pluginID).
		WithDetail("attribute", attr).
		WithDetail("kind", kind).
		WithDetail("plugin", pluginID)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var psErr *PlugsetError
	if errors.As(err, &psErr) {
		return psErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PlugsetError
func GetErrorCode(err error) ErrorCode {
	var psErr *PlugsetError
	if errors.As(err, &psErr) {
		return psErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PlugsetError
func GetErrorDetails(err error) map[string]interface{} {
	var psErr *PlugsetError
	if errors.As(err, &psErr) {
		return psErr.Details
	}
	return nil
}
