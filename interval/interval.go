package interval

import (
	"fmt"
	"math"
)

// Interval is a closed integer range [start, end]. Fields are unexported so a
// constructed Interval can never be changed or made invalid; the zero value is
// the single point [0, 0].
type Interval struct {
	start, end int64
}

// New constructs [start, end]. Returns ErrInvalidRange if start > end.
func New(start, end int64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
	}

	return Interval{start: start, end: end}, nil
}

// Point returns the single-point interval [p, p].
func Point(p int64) Interval {
	return Interval{start: p, end: p}
}

// Start returns the inclusive lower bound.
func (iv Interval) Start() int64 { return iv.start }

// End returns the inclusive upper bound.
func (iv Interval) End() int64 { return iv.end }

// Len returns how many integers the interval covers. The full int64 range
// holds 2^64 integers, one more than a uint64 can hold; Len saturates at
// math.MaxUint64 for it.
func (iv Interval) Len() uint64 {
	n := uint64(iv.end - iv.start)
	if n == math.MaxUint64 {
		return n
	}

	return n + 1
}

// Contains reports whether p lies in [start, end]. Both bounds are inclusive.
func (iv Interval) Contains(p int64) bool {
	return iv.start <= p && p <= iv.end
}

// Overlaps reports whether iv and o share at least one integer.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.start <= o.end && o.start <= iv.end
}

// Adjoins reports whether o starts no later than one past iv's end, i.e. the two
// intervals overlap or touch when o.start ≥ iv.start. Used by the merge sweep.
func (iv Interval) Adjoins(o Interval) bool {
	if iv.end == math.MaxInt64 {
		return true
	}

	return o.start <= iv.end+1
}

// Equal reports whether both bounds match.
func (iv Interval) Equal(o Interval) bool {
	return iv.start == o.start && iv.end == o.end
}

// String formats the interval as "start-end".
func (iv Interval) String() string {
	return fmt.Sprintf("%d-%d", iv.start, iv.end)
}
