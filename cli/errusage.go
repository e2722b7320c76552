package cli

import (
	"fmt"
)

// UsageError may be returned from a [Callback] to signal that the user invoked the mode incorrectly.
// [ModeSet.Process] will print the error followed by usage information for the mode, and then return the error.
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

// Is matches any *UsageError, so errors.Is(err, &UsageError{}) detects one anywhere in a chain.
func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError] wrapping fmt.Errorf(format, args...).
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
