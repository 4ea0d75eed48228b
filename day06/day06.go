// Package day06 solves "Trash Compactor": a worksheet of arithmetic problems
// laid out in columns. Problems are separated by a column of spaces and the
// last row holds each problem's operator.
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/puzzle"
)

var (
	// ErrNoOperator indicates a problem without '+' or '*' on the last row.
	ErrNoOperator = errors.New("day06: problem has no operator")
	// ErrNoOperands indicates a problem without any number.
	ErrNoOperands = errors.New("day06: problem has no numbers")
	// ErrTooFewRows indicates a worksheet with no number rows above the operators.
	ErrTooFewRows = errors.New("day06: worksheet needs number rows and an operator row")
)

// ProblemError reports a problem that was left out of the grand total.
type ProblemError struct {
	Column int // zero-based first column of the problem
	Err    error
}

// Error implements the error interface.
func (e *ProblemError) Error() string {
	return fmt.Sprintf("day06: problem at column %d: %v", e.Column, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ProblemError) Unwrap() error {
	return e.Err
}

// Problem is one column block of the worksheet.
type Problem struct {
	Op       byte
	Operands []int64
}

// Eval applies Op to all operands.
func (p Problem) Eval() int64 {
	if p.Op == '*' {
		v := int64(1)
		for _, n := range p.Operands {
			v *= n
		}
		return v
	}
	var v int64
	for _, n := range p.Operands {
		v += n
	}

	return v
}

// Worksheet is the input padded to a rectangle.
type Worksheet struct {
	rows  [][]byte // number rows
	ops   []byte   // operator row
	width int
}

// ParseWorksheet pads every line with spaces to the longest line.
func ParseWorksheet(input string) (*Worksheet, error) {
	lines, err := puzzle.Lines(input)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, ErrTooFewRows
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	padded := make([][]byte, len(lines))
	for i, l := range lines {
		padded[i] = []byte(l + strings.Repeat(" ", width-len(l)))
	}

	return &Worksheet{rows: padded[:len(padded)-1], ops: padded[len(padded)-1], width: width}, nil
}

// blank reports whether column c is empty in every row.
func (w *Worksheet) blank(c int) bool {
	if w.ops[c] != ' ' {
		return false
	}
	for _, r := range w.rows {
		if r[c] != ' ' {
			return false
		}
	}

	return true
}

// Blocks returns the [from, to) column bounds of every problem.
func (w *Worksheet) Blocks() [][2]int {
	var (
		out   [][2]int
		start = -1
	)
	for c := 0; c <= w.width; c++ {
		if c < w.width && !w.blank(c) {
			if start < 0 {
				start = c
			}
			continue
		}
		if start >= 0 {
			out = append(out, [2]int{start, c})
			start = -1
		}
	}

	return out
}

// operator returns the single '+' or '*' in the operator row of the block.
func (w *Worksheet) operator(b [2]int) (byte, error) {
	f := strings.TrimSpace(string(w.ops[b[0]:b[1]]))
	if f != "+" && f != "*" {
		return 0, errors.Wrapf(ErrNoOperator, "found %q", f)
	}

	return f[0], nil
}

// Horizontal reads each row of a block as one number.
func (w *Worksheet) Horizontal(b [2]int) (Problem, error) {
	op, err := w.operator(b)
	if err != nil {
		return Problem{}, err
	}
	p := Problem{Op: op}
	for _, r := range w.rows {
		f := strings.TrimSpace(string(r[b[0]:b[1]]))
		if f == "" {
			continue
		}
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Problem{}, errors.Wrap(puzzle.ErrMalformedLine, err.Error())
		}
		p.Operands = append(p.Operands, n)
	}
	if len(p.Operands) == 0 {
		return Problem{}, ErrNoOperands
	}

	return p, nil
}

// Vertical reads each column of a block, right to left, as one number whose
// most significant digit is at the top.
func (w *Worksheet) Vertical(b [2]int) (Problem, error) {
	op, err := w.operator(b)
	if err != nil {
		return Problem{}, err
	}
	p := Problem{Op: op}
	for c := b[1] - 1; c >= b[0]; c-- {
		var digits []byte
		for _, r := range w.rows {
			if r[c] != ' ' {
				digits = append(digits, r[c])
			}
		}
		if len(digits) == 0 {
			continue
		}
		n, err := strconv.ParseInt(string(digits), 10, 64)
		if err != nil {
			return Problem{}, errors.Wrap(puzzle.ErrMalformedLine, err.Error())
		}
		p.Operands = append(p.Operands, n)
	}
	if len(p.Operands) == 0 {
		return Problem{}, ErrNoOperands
	}

	return p, nil
}

// Solver has no settings.
type Solver struct{}

// New returns a Solver.
func New() *Solver {
	return &Solver{}
}

// SolvePartOne totals the problems read row by row.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	return solve(input, (*Worksheet).Horizontal)
}

// SolvePartTwo totals the problems read column by column, right to left.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	return solve(input, (*Worksheet).Vertical)
}

func solve(input string, read func(*Worksheet, [2]int) (Problem, error)) (puzzle.Answer, error) {
	w, err := ParseWorksheet(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day06")
	}

	var ans puzzle.Answer
	for _, b := range w.Blocks() {
		p, err := read(w, b)
		if err != nil {
			ans.Skipped = append(ans.Skipped, &ProblemError{Column: b[0], Err: err})
			continue
		}
		ans.Value += p.Eval()
	}

	return ans, nil
}
