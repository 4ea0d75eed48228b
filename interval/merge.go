package interval

import (
	"math"
	"slices"
)

// Merge returns the sorted, disjoint union of ivs. Overlapping and adjoining
// intervals (next.start ≤ current.end+1) are coalesced. ivs is not modified.
// Complexity: O(n log n).
func Merge(ivs []Interval) []Interval {
	sorted := slices.Clone(ivs)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		switch {
		case a.start < b.start:
			return -1
		case a.start > b.start:
			return 1
		}
		return 0
	})

	return mergeSorted(sorted)
}

// Cover returns the number of distinct integers covered by ivs, saturating at
// math.MaxUint64 like Len.
func Cover(ivs []Interval) uint64 {
	var total uint64
	for _, iv := range Merge(ivs) {
		n := iv.Len()
		if total > math.MaxUint64-n {
			return math.MaxUint64
		}
		total += n
	}

	return total
}

// mergeSorted sweeps intervals already ordered by start.
func mergeSorted(sorted []Interval) []Interval {
	if len(sorted) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if cur.Adjoins(next) {
			if next.end > cur.end {
				cur.end = next.end
			}
			continue
		}
		out = append(out, cur)
		cur = next
	}

	return append(out, cur)
}
