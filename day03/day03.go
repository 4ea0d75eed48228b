// Package day03 solves "Lobby": every line is a bank of single-digit battery
// joltages, and the largest number formed by switching on k batteries (keeping
// their order) is summed over all banks.
package day03

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

const (
	// DefaultBankSize is the number of batteries switched on in part two.
	DefaultBankSize = 12
	// maxBankSize keeps the joltage within an int64.
	maxBankSize = 18
)

var (
	// ErrBadBankSize indicates a bank size outside 1..18.
	ErrBadBankSize = errors.New("day03: bank size must be between 1 and 18")
	// ErrShortBank indicates a line with fewer digits than batteries to switch on.
	ErrShortBank = errors.New("day03: bank has fewer batteries than required")
	// ErrNotDigit indicates a line containing something other than 0-9.
	ErrNotDigit = errors.New("day03: bank must contain only digits")
)

// Solver holds the part-two bank size.
type Solver struct {
	bankSize int
}

// New returns a Solver that switches on bankSize batteries in part two.
func New(bankSize int) (*Solver, error) {
	if bankSize < 1 || bankSize > maxBankSize {
		return nil, errors.Wrapf(ErrBadBankSize, "got %d", bankSize)
	}

	return &Solver{bankSize: bankSize}, nil
}

// SolvePartOne sums the best two-battery joltage of each bank.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	return solve(input, 2)
}

// SolvePartTwo sums the best joltage of each bank using the configured size.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	return solve(input, s.bankSize)
}

func solve(input string, k int) (puzzle.Answer, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day03")
	}

	var ans puzzle.Answer
	for i, line := range lines {
		if line == "" {
			continue
		}
		j, err := MaxJoltage(line, k)
		if err != nil {
			ans.Skipped = append(ans.Skipped, &puzzle.ParseError{Line: i + 1, Text: line, Err: err})
			continue
		}
		ans.Value += j
	}

	return ans, nil
}

// MaxJoltage returns the largest k-digit number whose digits appear in bank
// in the same order.
//
// Digit i of the result is the largest digit in the window that still leaves
// k-i-1 digits after it; the leftmost maximum is taken so later windows stay
// as wide as possible. O(n*k).
func MaxJoltage(bank string, k int) (int64, error) {
	for i := 0; i < len(bank); i++ {
		if bank[i] < '0' || bank[i] > '9' {
			return 0, ErrNotDigit
		}
	}
	if len(bank) < k {
		return 0, errors.Wrapf(ErrShortBank, "have %d, need %d", len(bank), k)
	}

	var (
		v    int64
		from int
	)
	for i := 0; i < k; i++ {
		best := from
		for j := from + 1; j <= len(bank)-(k-i); j++ {
			if bank[j] > bank[best] {
				best = j
				if bank[j] == '9' {
					break
				}
			}
		}
		v = v*10 + int64(bank[best]-'0')
		from = best + 1
	}

	return v, nil
}
