package providers

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when no upstream is configured.
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError captures a non-success HTTP response from the upstream API.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("upstream %s: unexpected status %d", e.Endpoint, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
