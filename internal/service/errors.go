package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoProvider is returned by NewProvider when no credential is configured.
	ErrNoProvider = errors.New("no model provider configured")
	// ErrInvalidResponse marks replies that are not valid JSON or fail the schema.
	ErrInvalidResponse = errors.New("invalid model response")
	ErrCircuitOpen     = errors.New("circuit breaker open")
)

type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// InvalidResponseError keeps the raw reply so callers can still use it as text.
type InvalidResponseError struct {
	Raw string
	Err error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidResponse, e.Err)
}

func (e *InvalidResponseError) Unwrap() []error { return []error{ErrInvalidResponse, e.Err} }

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	var rl *RateLimitError
	var un *UnavailableError
	return errors.As(err, &rl) || errors.As(err, &un)
}

// RawContent returns the reply carried by an InvalidResponseError.
func RawContent(err error) (string, bool) {
	var inv *InvalidResponseError
	if errors.As(err, &inv) {
		return inv.Raw, true
	}
	return "", false
}
