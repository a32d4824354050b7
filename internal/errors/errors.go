// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeFileNotFound indicates an input file is absent
	TypeFileNotFound Type = "FILE_NOT_FOUND"

	// TypeParsing indicates malformed catalog or sequence data
	TypeParsing Type = "PARSE_ERROR"

	// TypeMissingField indicates a resource lacks a required field
	TypeMissingField Type = "MISSING_FIELD"

	// TypeEmptyResult indicates an aggregation has nothing to chart
	TypeEmptyResult Type = "EMPTY_RESULT"

	// TypeValidation indicates catalog data that breaks an invariant
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeRender indicates a chart could not be drawn
	TypeRender Type = "RENDER_ERROR"

	// TypeOutput indicates an artifact could not be written
	TypeOutput Type = "OUTPUT_ERROR"

	// TypeNotFound indicates a lookup miss (resource, city, biome)
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType reports whether err, or any error it wraps, is a domain error of
// type t.
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// FileNotFound creates an error for an absent input file
func FileNotFound(path string, cause error) *Error {
	return Wrapf(TypeFileNotFound, cause, "%s not found", path).WithContext("path", path)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// MissingField creates an error for a resource lacking a required field
func MissingField(resource, field string) *Error {
	return Newf(TypeMissingField, "resource %q has no %s", resource, field).
		WithContext("resource", resource).
		WithContext("field", field)
}

// EmptyResult creates a skip-this-chart condition
func EmptyResult(message string) *Error {
	return New(TypeEmptyResult, message)
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Render creates a chart rendering error
func Render(chart string, cause error) *Error {
	return Wrapf(TypeRender, cause, "rendering %s", chart).WithContext("chart", chart)
}

// Output creates an artifact write error
func Output(name string, cause error) *Error {
	return Wrapf(TypeOutput, cause, "writing %s", name).WithContext("artifact", name)
}

// NotFound creates a not found error
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
