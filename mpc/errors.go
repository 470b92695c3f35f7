// Public domain.

package mpc

import (
	"errors"
	"fmt"
)

// ValidationError reports a bad identifier, constraint or payload shape.
// It is always local: no request has been sent when it is returned.
type ValidationError struct {
	Field  string // offending field token or identifier, may be empty
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "mpc: " + e.Reason
	}
	return fmt.Sprintf("mpc: %s: %q", e.Reason, e.Field)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ParseError reports a response body that is not JSON or does not have
// the expected shape.
type ParseError struct {
	Msg string
	Err error // underlying decode error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "mpc: " + e.Msg + ": " + e.Err.Error()
	}
	return "mpc: " + e.Msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string // leading part of the response body
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return "mpc: service returned " + e.Status
	}
	return fmt.Sprintf("mpc: service returned %s: %s", e.Status, e.Body)
}

// ErrNotImplemented is matched by errors from operations the service
// interface declares but this package does not provide.
var ErrNotImplemented = errors.New("not implemented")

func notImplemented(op string) error {
	return fmt.Errorf("mpc: %s: %w", op, ErrNotImplemented)
}
