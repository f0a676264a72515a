package errors

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeNotFound   ErrorType = "notfound"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeInternal   ErrorType = "internal"
)

// HabError represents a structured error with context
type HabError struct {
	Type    ErrorType
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *HabError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping
func (e *HabError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a specific type
func (e *HabError) Is(target error) bool {
	if targetErr, ok := target.(*HabError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *HabError) WithContext(key string, value interface{}) *HabError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new HabError
func New(errType ErrorType, message string) *HabError {
	return &HabError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *HabError {
	return &HabError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
		Cause:   err,
	}
}

// Newf creates a new HabError with formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *HabError {
	return New(errType, fmt.Sprintf(format, args...))
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	if hErr, ok := err.(*HabError); ok {
		return hErr.Type == errType
	}
	return false
}

// IsNotFound reports whether err represents the not-found outcome of an
// item lookup. Not-found is a normal result, not a failure.
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// GetType returns the error type, or ErrorTypeInternal if not a HabError
func GetType(err error) ErrorType {
	if hErr, ok := err.(*HabError); ok {
		return hErr.Type
	}
	return ErrorTypeInternal
}

// GetContext returns context information from the error
func GetContext(err error) map[string]interface{} {
	if hErr, ok := err.(*HabError); ok {
		return hErr.Context
	}
	return nil
}
