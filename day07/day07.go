// Package day07 solves "Laboratories": a tachyon beam enters a manifold at S
// and is split left and right by every splitter it reaches. Part one counts
// split events; part two counts the distinct timelines a single particle can
// follow, which is the number of root-to-leaf paths in the ray graph.
package day07

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
	"github.com/katalvlaran/aoc2025/raygraph"
)

// ErrPathOverflow indicates more timelines than an int64 answer can hold.
var ErrPathOverflow = errors.New("day07: timeline count overflows int64")

// Solver carries the ray graph options used for every build.
type Solver struct {
	opts []raygraph.Option
}

// New returns a Solver, rejecting invalid options up front.
func New(opts ...raygraph.Option) (*Solver, error) {
	if err := raygraph.Validate(opts...); err != nil {
		return nil, errors.Wrap(err, "day07")
	}

	return &Solver{opts: opts}, nil
}

func (s *Solver) build(input string) (*raygraph.Graph, error) {
	g, err := raygraph.Parse(input, s.opts...)
	if err != nil {
		return nil, errors.Wrap(err, "day07")
	}

	return g, nil
}

// SolvePartOne counts how many times the beam is split.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	g, err := s.build(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Value: int64(g.Splits())}, nil
}

// SolvePartTwo counts the timelines of a single particle.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	g, err := s.build(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n := g.CountPaths()
	if n > math.MaxInt64 {
		return puzzle.Answer{}, errors.Wrapf(ErrPathOverflow, "%d", n)
	}

	return puzzle.Answer{Value: int64(n)}, nil
}
