package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle dispatch and input handling.
var (
	// ErrEmptyInput indicates the input holds no data at all.
	ErrEmptyInput = errors.New("puzzle: input is empty")
	// ErrMalformedLine indicates a line that does not match the expected format.
	ErrMalformedLine = errors.New("puzzle: malformed line")
	// ErrBadDay indicates a day outside 1..25.
	ErrBadDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrDuplicateDay indicates a second solver registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
	// ErrUnknownPart indicates a part other than 1 or 2.
	ErrUnknownPart = errors.New("puzzle: part must be 1 or 2")
)

// Solver computes both answers of one day from the raw input text.
type Solver interface {
	SolvePartOne(input string) (Answer, error)
	SolvePartTwo(input string) (Answer, error)
}

// Answer is a computed value together with the input items that were left
// out of it because they could not be parsed.
type Answer struct {
	Value   int64
	Skipped []error
}

// ParseError reports one input line that was excluded from an aggregate.
type ParseError struct {
	Line int    // 1-based line number within the parsed block
	Text string // the offending line
	Err  error  // underlying cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("puzzle: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
