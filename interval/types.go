package interval

import (
	"errors"
	"fmt"
)

// Sentinel errors for interval operations.
var (
	// ErrInvalidRange indicates a range whose start is greater than its end.
	ErrInvalidRange = errors.New("interval: start must not be greater than end")
	// ErrMalformedRange indicates a token that is not "<start>-<end>".
	ErrMalformedRange = errors.New("interval: range must be two integers delimited by '-'")
)

// ParseError describes a single token that ParseList could not turn into an
// Interval. The token is excluded from the result.
type ParseError struct {
	Index int    // zero-based position of the token in the input
	Token string // raw token text, trimmed
	Err   error  // underlying cause, wraps ErrMalformedRange or ErrInvalidRange
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("interval: token %d %q: %v", e.Index, e.Token, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
