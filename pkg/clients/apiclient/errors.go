package apiclient

import (
	"errors"
	"fmt"
)

// ErrTimeout marks a request that exceeded the configured per-call
// timeout. Check with errors.Is.
var ErrTimeout = errors.New("apiclient: request timed out")

// NetworkError is a transport-level failure: connection refused, DNS
// failure, broken pipe. The backend never saw, or never answered,
// the request.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("apiclient: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a failure the backend reported: a non-2xx status or an
// error payload in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("apiclient: server error (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("apiclient: server error (HTTP %d): %s", e.StatusCode, e.Message)
}

// ValidationError is raised before any network call when the input
// fails local validation, or when a response body does not match the
// expected shape.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("apiclient: invalid %s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a local validation failure,
// i.e. no request was issued.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
