// Package errors defines the error types used across the search pipeline.
package errors

import (
	"errors"
	"fmt"
)

// SearchError represents a failed catalog search request. It is fatal for
// the invocation that produced it: no partial results are published.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("catalog search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError wraps err as a fatal catalog search failure.
func NewSearchError(err error) *SearchError {
	return &SearchError{Err: err}
}

// IsSearchError reports whether err is a SearchError (even when wrapped).
func IsSearchError(err error) bool {
	var searchErr *SearchError
	return errors.As(err, &searchErr)
}
