package taskapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated means the token was missing or rejected. The
	// caller is expected to tear the session down and send the user back
	// to the sign-in page.
	ErrUnauthenticated = errors.New("taskapi: unauthenticated")

	ErrNotFound = errors.New("taskapi: not found")
)

// ServerError is a non-2xx response. Message carries the server's own
// wording when the body supplied one, and stays empty otherwise.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("taskapi: server rejected (%d)", e.Status)
	}
	return fmt.Sprintf("taskapi: server rejected (%d): %s", e.Status, e.Message)
}

// Unwrap maps the status to the matching sentinel, so callers can branch
// with errors.Is without losing the server's message.
func (e *ServerError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// RequestError is a transport-level failure: the request never produced a
// decodable response.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("taskapi: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// UserMessage extracts a message suitable for display: the server's own
// wording when it supplied one, otherwise the given fallback.
func UserMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
