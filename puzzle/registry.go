package puzzle

import (
	"fmt"
	"slices"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("puzzle")

// Registry maps a day number to its Solver. Registration happens once at
// start-up; afterwards the registry is only read.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds s as the solver for day.
// Returns ErrBadDay for days outside 1..25 and ErrDuplicateDay if the day
// already has a solver.
func (r *Registry) Register(day int, s Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	if _, ok := r.solvers[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.solvers[day] = s

	return nil
}

// Lookup returns the solver for day or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

// Run solves one part of one day. Skipped items are logged at warning level
// and still returned to the caller in Answer.Skipped.
func (r *Registry) Run(day, part int, input string) (Answer, error) {
	s, err := r.Lookup(day)
	if err != nil {
		return Answer{}, err
	}

	var ans Answer
	switch part {
	case 1:
		ans, err = s.SolvePartOne(input)
	case 2:
		ans, err = s.SolvePartTwo(input)
	default:
		return Answer{}, fmt.Errorf("%w: %d", ErrUnknownPart, part)
	}
	if err != nil {
		return Answer{}, err
	}

	for _, e := range ans.Skipped {
		log.Warningf("day %d part %d: skipped %v", day, part, e)
	}
	log.Debugf("day %d part %d: %d (%d skipped)", day, part, ans.Value, len(ans.Skipped))

	return ans, nil
}
