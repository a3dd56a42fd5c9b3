// Package api implements the HTTP gateway to the EzyCook backend and the
// typed recipe/user clients built on top of it.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork covers transport failures and timeouts. The underlying
	// cause is wrapped and reachable via errors.Unwrap.
	ErrNetwork = errors.New("network error")

	// ErrEmptyResponse is returned when the server answers 2xx with no body
	// where one was expected.
	ErrEmptyResponse = errors.New("empty response")

	// ErrDecoding is returned when a response body does not match the
	// expected shape.
	ErrDecoding = errors.New("decoding error")
)

// ServerError is a remote rejection: a non-2xx status whose body carried a
// message. Matched with errors.As.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}
