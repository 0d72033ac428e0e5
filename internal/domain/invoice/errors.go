package invoice

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/SalBom/app-sb-sub001/internal/domain"
)

// TransportError reports that the backend could not be reached: connection
// failure, timeout, or a request rejected by the circuit breaker.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("invoice transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, domain.ErrUnavailable) match transport failures.
func (e *TransportError) Is(target error) bool {
	return target == domain.ErrUnavailable
}

// Timeout reports whether the failure was caused by a deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPStatusError reports a non-2xx answer from the backend.
type HTTPStatusError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPStatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invoice backend returned HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("invoice backend returned HTTP %d", e.StatusCode)
}

// Unwrap maps the status code to the matching domain sentinel.
func (e *HTTPStatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case e.StatusCode == http.StatusConflict:
		return domain.ErrConflict
	default:
		return domain.ErrUnavailable
	}
}

// DecodeError reports a 2xx response whose body is not valid JSON or lacks a
// usable pdf_url.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invoice decode: %s: %v", e.Reason, e.Err)
	}
	return "invoice decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, domain.ErrUnavailable) match decode failures; the
// backend answered, but not with anything usable.
func (e *DecodeError) Is(target error) bool {
	return target == domain.ErrUnavailable
}
