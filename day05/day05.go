// Package day05 solves "Cafeteria": a database of fresh ingredient id ranges
// followed by a list of available ingredient ids.
package day05

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/puzzle"
)

var (
	// ErrMissingIDs indicates input without the second, blank-line separated section.
	ErrMissingIDs = errors.New("day05: ingredient id section is missing")
	// ErrCoverOverflow indicates a union of ranges too large for an int64 answer.
	ErrCoverOverflow = errors.New("day05: covered id count overflows int64")
)

// Solver has no settings.
type Solver struct{}

// New returns a Solver.
func New() *Solver {
	return &Solver{}
}

// Inventory is the parsed puzzle input.
type Inventory struct {
	Fresh   *interval.Tree
	IDs     []int64
	HasIDs  bool // the id section was present, even if every id was malformed
	Skipped []error
}

// Parse reads the range section and, when present, the id section.
// Malformed ranges and ids are reported in Skipped.
func Parse(input string) (*Inventory, error) {
	secs, err := puzzle.Sections(input)
	if err != nil {
		return nil, err
	}

	ranges, skipped := interval.ParseList(secs[0])
	inv := &Inventory{Fresh: interval.NewTree(ranges...), Skipped: skipped}
	if len(secs) < 2 {
		return inv, nil
	}

	inv.HasIDs = true
	for i, line := range strings.Split(strings.Join(secs[1:], "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			inv.Skipped = append(inv.Skipped, &puzzle.ParseError{
				Line: i + 1,
				Text: line,
				Err:  errors.Wrap(puzzle.ErrMalformedLine, err.Error()),
			})
			continue
		}
		inv.IDs = append(inv.IDs, id)
	}

	return inv, nil
}

// SolvePartOne counts available ids that fall in at least one fresh range.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	inv, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day05")
	}
	if !inv.HasIDs {
		return puzzle.Answer{}, ErrMissingIDs
	}

	var n int64
	for _, id := range inv.IDs {
		if inv.Fresh.Contains(id) {
			n++
		}
	}

	return puzzle.Answer{Value: n, Skipped: inv.Skipped}, nil
}

// SolvePartTwo counts every id covered by the union of the fresh ranges.
// The id section is ignored.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	inv, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day05")
	}

	cover := interval.Cover(inv.Fresh.MergeAll())
	if cover > math.MaxInt64 {
		return puzzle.Answer{}, errors.Wrapf(ErrCoverOverflow, "%d", cover)
	}

	return puzzle.Answer{Value: int64(cover), Skipped: inv.Skipped}, nil
}
