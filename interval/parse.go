package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a single "<start>-<end>" token. Surrounding whitespace is ignored.
// The separator is the first '-' after the first byte, so a negative start
// ("-5-3") is accepted.
// Errors wrap ErrMalformedRange or ErrInvalidRange.
func Parse(token string) (Interval, error) {
	s := strings.TrimSpace(token)
	if len(s) < 3 {
		return Interval{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	sep := strings.IndexByte(s[1:], '-')
	if sep < 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	sep++

	start, err := strconv.ParseInt(strings.TrimSpace(s[:sep]), 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid start: %v", ErrMalformedRange, err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(s[sep+1:]), 10, 64)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid end: %v", ErrMalformedRange, err)
	}

	return New(start, end)
}

// ParseList reads every token of text, where tokens are separated by commas
// and/or newlines. Blank tokens are ignored. Each token that fails to parse is
// reported as a *ParseError and left out of the returned slice; it is never
// replaced with a default value.
func ParseList(text string) ([]Interval, []error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var (
		out  = make([]Interval, 0, len(fields))
		errs []error
		idx  int
	)
	for _, f := range fields {
		tok := strings.TrimSpace(f)
		if tok == "" {
			continue
		}
		iv, err := Parse(tok)
		if err != nil {
			errs = append(errs, &ParseError{Index: idx, Token: tok, Err: err})
		} else {
			out = append(out, iv)
		}
		idx++
	}

	return out, errs
}
