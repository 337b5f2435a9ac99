package providers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNetwork           = errors.New("network error")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrMalformedResponse = errors.New("malformed response")
)

type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s is out of range", e.Field, strconv.FormatFloat(e.Value, 'f', -1, 64))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NetworkError wraps transport failures such as DNS, refused connections and
// timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("forecast API returned status code: %d", e.StatusCode)
}

func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("forecast API returned malformed response: %s: %v", e.Reason, e.Err)
	}
	return "forecast API returned malformed response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// IsRetryable reports whether a caller may reasonably try the same request
// again. The client itself never retries.
func IsRetryable(err error) bool {
	var statusErr *HTTPStatusError
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNetwork):
		return true
	case errors.As(err, &statusErr):
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}
