// Package day01 solves "Secret Entrance": a dial numbered 0..99 is turned by a
// list of rotations, and the password counts how often the dial points at 0.
package day01

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

const (
	// DialSize is the number of positions on the dial.
	DialSize = 100
	// DefaultStart is the position the dial is set to before the first rotation.
	DefaultStart = 50
)

// ErrBadStart indicates a start position outside 0..DialSize-1.
var ErrBadStart = errors.New("day01: start position must be between 0 and 99")

// Rotation is one parsed input line. Dir is -1 for L and +1 for R.
type Rotation struct {
	Dir  int
	Dist int64
}

// Solver holds the dial start position.
type Solver struct {
	start int64
}

// New returns a Solver whose dial starts at start.
func New(start int) (*Solver, error) {
	if start < 0 || start >= DialSize {
		return nil, errors.Wrapf(ErrBadStart, "got %d", start)
	}

	return &Solver{start: int64(start)}, nil
}

// ParseRotation reads "L<n>" or "R<n>".
func ParseRotation(s string) (Rotation, error) {
	if len(s) < 2 {
		return Rotation{}, puzzle.ErrMalformedLine
	}
	var r Rotation
	switch s[0] {
	case 'L':
		r.Dir = -1
	case 'R':
		r.Dir = 1
	default:
		return Rotation{}, errors.Wrap(puzzle.ErrMalformedLine, "direction must be L or R")
	}
	d, err := strconv.ParseUint(s[1:], 10, 63)
	if err != nil {
		return Rotation{}, errors.Wrap(puzzle.ErrMalformedLine, err.Error())
	}
	r.Dist = int64(d)

	return r, nil
}

// parse returns the rotations of input in order plus the lines it skipped.
func parse(input string) ([]Rotation, []error, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, nil, err
	}

	var (
		rots    = make([]Rotation, 0, len(lines))
		skipped []error
	)
	for i, line := range lines {
		if line == "" {
			continue
		}
		r, err := ParseRotation(line)
		if err != nil {
			skipped = append(skipped, &puzzle.ParseError{Line: i + 1, Text: line, Err: err})
			continue
		}
		rots = append(rots, r)
	}

	return rots, skipped, nil
}

// SolvePartOne counts rotations that leave the dial on 0.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	rots, skipped, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day01")
	}

	pos, zeros := s.start, int64(0)
	for _, r := range rots {
		pos = mod(pos + int64(r.Dir)*r.Dist)
		if pos == 0 {
			zeros++
		}
	}

	return puzzle.Answer{Value: zeros, Skipped: skipped}, nil
}

// SolvePartTwo counts every click at which the dial points at 0, whether in
// the middle of a rotation or at its end.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	rots, skipped, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day01")
	}

	pos, zeros := s.start, int64(0)
	for _, r := range rots {
		zeros += r.Dist / DialSize
		rem := r.Dist % DialSize
		if pos != 0 && ((r.Dir < 0 && rem >= pos) || (r.Dir > 0 && pos+rem >= DialSize)) {
			zeros++
		}
		pos = mod(pos + int64(r.Dir)*rem)
	}

	return puzzle.Answer{Value: zeros, Skipped: skipped}, nil
}

func mod(v int64) int64 {
	v %= DialSize
	if v < 0 {
		v += DialSize
	}

	return v
}
