package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Fetch Errors.

	// ErrFetchFailed wraps every failure of a remote fetch.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrDecodeFailed indicates the response body could not be decoded.
	ErrDecodeFailed = errors.New("decode failed")
)

// StatusError represents a non-success HTTP response from a fetch.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// IsStatusError checks if the error carries a non-success HTTP status.
func IsStatusError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr)
}
