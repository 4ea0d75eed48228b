// Package solutions registers every implemented day with a puzzle.Registry.
package solutions

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/day01"
	"github.com/katalvlaran/aoc2025/day02"
	"github.com/katalvlaran/aoc2025/day03"
	"github.com/katalvlaran/aoc2025/day04"
	"github.com/katalvlaran/aoc2025/day05"
	"github.com/katalvlaran/aoc2025/day06"
	"github.com/katalvlaran/aoc2025/day07"
	"github.com/katalvlaran/aoc2025/puzzle"
	"github.com/katalvlaran/aoc2025/raygraph"
)

// Options carries the tunable puzzle parameters.
type Options struct {
	DialStart       int
	BatteryBankSize int
	StartMarker     byte
	SplitMarker     byte
	RowStep         int
}

// DefaultOptions matches the puzzle statements.
func DefaultOptions() Options {
	return Options{
		DialStart:       day01.DefaultStart,
		BatteryBankSize: day03.DefaultBankSize,
		StartMarker:     raygraph.DefaultStartMarker,
		SplitMarker:     raygraph.DefaultSplitMarker,
		RowStep:         raygraph.DefaultRowStep,
	}
}

// NewRegistry builds days 1 through 7.
func NewRegistry(opts Options) (*puzzle.Registry, error) {
	d1, err := day01.New(opts.DialStart)
	if err != nil {
		return nil, err
	}
	d3, err := day03.New(opts.BatteryBankSize)
	if err != nil {
		return nil, err
	}
	d7, err := day07.New(
		raygraph.WithStartMarker(opts.StartMarker),
		raygraph.WithSplitMarker(opts.SplitMarker),
		raygraph.WithRowStep(opts.RowStep),
	)
	if err != nil {
		return nil, err
	}

	r := puzzle.NewRegistry()
	for day, s := range []puzzle.Solver{d1, day02.New(), d3, day04.New(), day05.New(), day06.New(), d7} {
		if err := r.Register(day+1, s); err != nil {
			return nil, errors.Wrapf(err, "register day %d", day+1)
		}
	}

	return r, nil
}
