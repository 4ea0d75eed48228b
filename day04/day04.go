// Package day04 solves "Printing Department": a grid of paper rolls where a
// roll is accessible when fewer than four of its eight neighbours are rolls.
package day04

import (
	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/gridgraph"
	"github.com/katalvlaran/aoc2025/puzzle"
)

var log = logging.MustGetLogger("day04")

const (
	// Roll marks a paper roll.
	Roll byte = '@'
	// Removed marks a roll that a forklift has taken away.
	Removed byte = 'x'
	// crowded is the neighbour count at which a roll becomes unreachable.
	crowded = 4
)

// Solver has no settings.
type Solver struct{}

// New returns a Solver.
func New() *Solver {
	return &Solver{}
}

func parse(input string) (*gridgraph.CharGrid, error) {
	g, err := gridgraph.ParseCharGrid(input, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, errors.Wrap(err, "day04")
	}

	return g, nil
}

// Accessible returns the row-major indices of rolls with fewer than four
// neighbouring rolls.
func Accessible(g *gridgraph.CharGrid) []int {
	var out []int
	for _, i := range g.Find(Roll) {
		x, y := g.Coordinate(i)
		if g.CountNeighbors(x, y, Roll) < crowded {
			out = append(out, i)
		}
	}

	return out
}

// Sweep removes every accessible roll at once and returns the new grid with
// the number of rolls removed.
func Sweep(g *gridgraph.CharGrid) (*gridgraph.CharGrid, int) {
	removed := 0
	next := g.Map(func(x, y int, c byte) byte {
		if c == Roll && g.CountNeighbors(x, y, Roll) < crowded {
			removed++
			return Removed
		}
		return c
	})

	return next, removed
}

// SolvePartOne counts the rolls that are accessible right away.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	g, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Value: int64(len(Accessible(g)))}, nil
}

// SolvePartTwo sweeps until no roll is accessible and counts every removal.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	g, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var total int64
	for round := 1; ; round++ {
		var n int
		g, n = Sweep(g)
		if n == 0 {
			break
		}
		log.Debugf("round %d removed %d rolls", round, n)
		total += int64(n)
	}

	return puzzle.Answer{Value: total}, nil
}
