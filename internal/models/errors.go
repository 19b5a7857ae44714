// Package models defines the data structures for the notebook relay service.
package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies relay failures for response mapping and logging.
type ErrorKind string

const (
	ErrorKindInput     ErrorKind = "input"
	ErrorKindConfig    ErrorKind = "config"
	ErrorKindTransport ErrorKind = "transport"
	ErrorKindUpstream  ErrorKind = "upstream"
	ErrorKindInternal  ErrorKind = "internal"
)

// Common errors
var (
	ErrSourceNotFound = errors.New("source not found")
)

// RelayError is an error with a classification kind. The message is what
// callers see and what gets persisted to the status record, so it carries
// the diagnostic detail (variable names, target URLs, upstream bodies).
type RelayError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error returns the error message.
func (e *RelayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RelayError) Unwrap() error {
	return e.Err
}

// NewRelayError creates a RelayError with a formatted message.
func NewRelayError(kind ErrorKind, format string, args ...interface{}) *RelayError {
	return &RelayError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapRelayError creates a RelayError wrapping an underlying error.
func WrapRelayError(kind ErrorKind, err error, format string, args ...interface{}) *RelayError {
	return &RelayError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the classification of err, or ErrorKindInternal for
// errors that carry no RelayError in their chain.
func KindOf(err error) ErrorKind {
	var re *RelayError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ErrorKindInternal
}
