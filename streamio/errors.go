package streamio

import (
	"errors"
	"fmt"
)

var (
	// ErrPageLimit is returned when a page request asks for fewer than one or more than
	// MaxPageSize records. Callers clamp before fetching.
	ErrPageLimit = errors.New("page limit out of range")

	// ErrMalformedPage is returned when a successful response does not decode as a video list.
	ErrMalformedPage = errors.New("malformed video page")
)

// UpstreamError is a non-success HTTP response from the API.
type UpstreamError struct {
	StatusCode int
	// Message is the API's structured error message, or the HTTP status text without one.
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("streamio: upstream returned %d: %s", e.StatusCode, e.Message)
}

// TransportError is a request that never produced an HTTP response: refused connections,
// timeouts, cancellation.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return "streamio: " + e.Op + " " + e.URL + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }
