package errors

import (
	"errors"
	"fmt"
)

// AvailabilityError represents a failed availability batch lookup.
// It is non-fatal: the affected books keep their unresolved availability
// and the search as a whole still succeeds.
type AvailabilityError struct {
	Bibkeys int
	Err     error
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("availability lookup failed for %d bibkeys: %v", e.Bibkeys, e.Err)
}

func (e *AvailabilityError) Unwrap() error {
	return e.Err
}

// NewAvailabilityError wraps err as a non-fatal availability lookup failure
// covering the given number of bibkeys.
func NewAvailabilityError(bibkeys int, err error) *AvailabilityError {
	return &AvailabilityError{Bibkeys: bibkeys, Err: err}
}

// IsAvailabilityError reports whether err is an AvailabilityError (even when wrapped).
func IsAvailabilityError(err error) bool {
	var availErr *AvailabilityError
	return errors.As(err, &availErr)
}
