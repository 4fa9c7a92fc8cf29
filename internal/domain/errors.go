package domain

import (
	"errors"
	"fmt"
)

// ErrorType classifies an error for the API error body.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeDataSource ErrorType = "data_source_error"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// Error is a classified error. Message is safe to expose to API clients;
// the wrapped cause is not and stays in the logs.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError builds a validation error from a format string.
func NewValidationError(format string, args ...any) *Error {
	return &Error{Type: ErrorTypeValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError builds a not-found error from a format string.
func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Type: ErrorTypeNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewDataSourceError wraps a row-source failure. Connectivity errors,
// timeouts, and query errors all surface under this single classification.
func NewDataSourceError(err error) *Error {
	return &Error{Type: ErrorTypeDataSource, Message: "data source unavailable", Err: err}
}

// TypeOf returns the classification of err, or ErrorTypeInternal for
// unclassified errors.
func TypeOf(err error) ErrorType {
	var de *Error
	if errors.As(err, &de) {
		return de.Type
	}
	return ErrorTypeInternal
}

// PublicMessage returns the client-safe message for err. Unclassified
// errors get a generic message so internal detail is never exposed.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}
