package bdsapi

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a parameter combination that cannot be mapped to
// an upstream endpoint. It is returned before any network call is made.
var ErrInvalidArgument = errors.New("invalid argument")

// StatusError is returned when the upstream API responds with a non-2xx
// status. It carries the status code and the raw response body unmodified.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// ValidationError is returned when a response body is not valid JSON or does
// not match the declared schema for the endpoint. Path names the offending
// field when it is known.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid response at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid response: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
