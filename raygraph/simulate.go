package raygraph

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// CountSplits runs the ray simulation without building a graph and returns the
// number of split events. The active columns are kept in a set, so rays that
// converge on a column are a single ray from then on. The result always equals
// Build(grid, opts...).Splits().
func CountSplits(grid *gridgraph.CharGrid, opts ...Option) (int, error) {
	if grid == nil {
		return 0, ErrEmptyInput
	}
	o, err := newOptions(opts)
	if err != nil {
		return 0, err
	}

	active := mapset.NewThreadUnsafeSet[int]()
	for x := 0; x < grid.Width; x++ {
		if grid.At(x, 0) == o.StartMarker {
			active.Add(x)
		}
	}

	splits := 0
	for row := o.RowStep; row < grid.Height && active.Cardinality() > 0; row += o.RowStep {
		hit := mapset.NewThreadUnsafeSet[int]()
		active.Each(func(c int) bool {
			if grid.At(c, row) == o.SplitMarker {
				hit.Add(c)
			}
			return false
		})
		if hit.Cardinality() == 0 {
			continue
		}
		splits += hit.Cardinality()

		next := active.Difference(hit)
		hit.Each(func(c int) bool {
			for _, cc := range [2]int{c - 1, c + 1} {
				if grid.InBounds(cc, row) {
					next.Add(cc)
				}
			}
			return false
		})
		active = next
	}

	return splits, nil
}
