// Package day02 solves "Gift Shop": product id ranges are scanned for ids
// whose decimal digits are one block repeated.
//
// Instead of testing every id in a range, candidates are generated directly:
// an id of L digits made of a b-digit block repeated L/b times equals
// block * (1 + 10^b + 10^2b + ...), so the blocks that land inside [start,end]
// form a contiguous run.
package day02

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/puzzle"
)

// maxDigits is the digit count of the largest int64.
const maxDigits = 19

var (
	// ErrLeadingZero indicates a range bound written with a leading zero.
	ErrLeadingZero = errors.New("day02: range bounds must not begin with 0")
	// ErrNotPositive indicates a range bound below 1.
	ErrNotPositive = errors.New("day02: range bounds must be positive")
)

// Solver has no settings.
type Solver struct{}

// New returns a Solver.
func New() *Solver {
	return &Solver{}
}

// ParseRange reads one "<start>-<end>" token of product ids.
func ParseRange(token string) (interval.Interval, error) {
	tok := strings.TrimSpace(token)
	if strings.HasPrefix(tok, "0") || strings.Contains(tok, "-0") {
		return interval.Interval{}, ErrLeadingZero
	}
	iv, err := interval.Parse(tok)
	if err != nil {
		return interval.Interval{}, err
	}
	if iv.Start() < 1 {
		return interval.Interval{}, ErrNotPositive
	}

	return iv, nil
}

// parse splits input on commas and newlines and parses every range.
func parse(input string) ([]interval.Interval, []error, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil, puzzle.ErrEmptyInput
	}
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var (
		out     = make([]interval.Interval, 0, len(tokens))
		skipped []error
		idx     int
	)
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		iv, err := ParseRange(t)
		if err != nil {
			skipped = append(skipped, &interval.ParseError{Index: idx, Token: t, Err: err})
		} else {
			out = append(out, iv)
		}
		idx++
	}

	return out, skipped, nil
}

// SolvePartOne sums the ids made of a block repeated exactly twice.
func (s *Solver) SolvePartOne(input string) (puzzle.Answer, error) {
	return solve(input, 2, 2)
}

// SolvePartTwo sums the ids made of a block repeated at least twice.
func (s *Solver) SolvePartTwo(input string) (puzzle.Answer, error) {
	return solve(input, 2, maxDigits)
}

func solve(input string, minReps, maxReps int) (puzzle.Answer, error) {
	ranges, skipped, err := parse(input)
	if err != nil {
		return puzzle.Answer{}, errors.Wrap(err, "day02")
	}

	var sum int64
	for _, iv := range ranges {
		RepeatedIDs(iv, minReps, maxReps).Each(func(id int64) bool {
			sum += id
			return false
		})
	}

	return puzzle.Answer{Value: sum, Skipped: skipped}, nil
}

// RepeatedIDs returns the ids inside iv whose digits are one block repeated
// between minReps and maxReps times. An id such as 222222 qualifies for
// several block lengths and is returned once.
func RepeatedIDs(iv interval.Interval, minReps, maxReps int) mapset.Set[int64] {
	ids := mapset.NewThreadUnsafeSet[int64]()
	lo, hi := iv.Start(), iv.End()
	if hi < 1 {
		return ids
	}
	if lo < 1 {
		lo = 1
	}

	for length := digits(lo); length <= digits(hi); length++ {
		for block := 1; block <= length/2; block++ {
			reps := length / block
			if length%block != 0 || reps < minReps || reps > maxReps {
				continue
			}
			mult := repunit(block, reps)
			first := max(pow10(block-1), ceilDiv(lo, mult))
			last := min(pow10(block)-1, hi/mult)
			for b := first; b <= last; b++ {
				ids.Add(b * mult)
			}
		}
	}

	return ids
}

// digits returns the number of decimal digits of n > 0.
func digits(n int64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}

	return d
}

// pow10 returns 10^e for 0 <= e <= 18.
func pow10(e int) int64 {
	p := int64(1)
	for ; e > 0; e-- {
		p *= 10
	}

	return p
}

// repunit returns 1 + 10^block + 10^(2*block) + ... with reps terms.
func repunit(block, reps int) int64 {
	step, m := pow10(block), int64(0)
	for ; reps > 0; reps-- {
		m = m*step + 1
	}

	return m
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}
