package layzspa

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidPasswordOrEmail is returned when the vendor rejects the credentials or the API token.
	ErrInvalidPasswordOrEmail = errors.New("invalid password or email")
	// ErrNoDevices is returned when the account has no spa registered.
	ErrNoDevices = errors.New("no devices found")
	// ErrCannotConnect wraps failures to reach the vendor: network errors, timeouts and server errors.
	ErrCannotConnect = errors.New("cannot connect")
)

// HTTPError is returned when the API replies with an unexpected status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := http.StatusText(e.StatusCode)
	if e.Message != "" {
		msg = e.Message
	}
	return fmt.Sprintf("%d - %s", e.StatusCode, msg)
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrCannotConnect && e.StatusCode >= http.StatusInternalServerError
}
