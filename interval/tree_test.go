package interval_test

import (
	"math/rand/v2"
	"testing"

	"github.com/Workiva/go-datastructures/augmentedtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/interval"
)

// mustIntervals builds intervals from start/end pairs, failing the test on error.
func mustIntervals(t testing.TB, pairs ...[2]int64) []interval.Interval {
	t.Helper()
	out := make([]interval.Interval, 0, len(pairs))
	for _, p := range pairs {
		iv, err := interval.New(p[0], p[1])
		require.NoError(t, err)
		out = append(out, iv)
	}

	return out
}

// randomIntervals returns n intervals with starts in [0, span) and lengths up to maxLen.
func randomIntervals(r *rand.Rand, n int, span, maxLen int64) []interval.Interval {
	out := make([]interval.Interval, n)
	for i := range out {
		s := r.Int64N(span)
		iv, _ := interval.New(s, s+r.Int64N(maxLen))
		out[i] = iv
	}

	return out
}

// TestTree_Empty checks queries on an empty tree.
func TestTree_Empty(t *testing.T) {
	tr := interval.NewTree()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 0, tr.Height())
	assert.Nil(t, tr.QueryPoint(1))
	assert.False(t, tr.Contains(1))
	assert.Empty(t, tr.Intervals())
	assert.Nil(t, tr.MergeAll())
}

// TestTree_InsertRange rejects reversed bounds and keeps the tree unchanged.
func TestTree_InsertRange(t *testing.T) {
	tr := interval.NewTree()
	require.NoError(t, tr.InsertRange(1, 3))
	assert.ErrorIs(t, tr.InsertRange(4, 2), interval.ErrInvalidRange)
	assert.Equal(t, 1, tr.Len())
}

// TestTree_NoDedupOnInsert keeps equal intervals as separate members.
func TestTree_NoDedupOnInsert(t *testing.T) {
	tr := interval.NewTree(mustIntervals(t, [2]int64{1, 1}, [2]int64{1, 1})...)
	assert.Equal(t, 2, tr.Len())
	assert.Len(t, tr.QueryPoint(1), 2)
}

// TestTree_QueryPointBoundaries checks that start and end bounds are inclusive
// and that a single-point range matches exactly its point.
func TestTree_QueryPointBoundaries(t *testing.T) {
	tr := interval.NewTree(mustIntervals(t,
		[2]int64{3, 5}, [2]int64{10, 14}, [2]int64{16, 20}, [2]int64{12, 18}, [2]int64{25, 25},
	)...)

	cases := []struct {
		point int64
		want  []string
	}{
		{1, nil},
		{3, []string{"3-5"}},
		{5, []string{"3-5"}},
		{8, nil},
		{12, []string{"10-14", "12-18"}},
		{17, []string{"12-18", "16-20"}},
		{24, nil},
		{25, []string{"25-25"}},
		{26, nil},
	}
	for _, tc := range cases {
		var got []string
		for _, iv := range tr.QueryPoint(tc.point) {
			got = append(got, iv.String())
		}
		assert.Equal(t, tc.want, got, "QueryPoint(%d)", tc.point)
		assert.Equal(t, tc.want != nil, tr.Contains(tc.point), "Contains(%d)", tc.point)
	}
}

// TestTree_QueryRange checks range overlap queries return sorted results.
func TestTree_QueryRange(t *testing.T) {
	tr := interval.NewTree(mustIntervals(t,
		[2]int64{16, 20}, [2]int64{3, 5}, [2]int64{12, 18}, [2]int64{10, 14},
	)...)

	q, _ := interval.New(5, 11)
	assert.Equal(t, mustIntervals(t, [2]int64{3, 5}, [2]int64{10, 14}), tr.Query(q))

	q, _ = interval.New(6, 9)
	assert.Nil(t, tr.Query(q))

	q, _ = interval.New(0, 100)
	assert.Len(t, tr.Query(q), 4)
}

// TestTree_Sorted verifies in-order output, with equal starts kept in insertion order.
func TestTree_Sorted(t *testing.T) {
	ivs := mustIntervals(t,
		[2]int64{9, 9}, [2]int64{1, 4}, [2]int64{5, 6}, [2]int64{1, 2}, [2]int64{0, 10}, [2]int64{1, 3},
	)
	tr := interval.NewTree(ivs...)

	assert.Equal(t, mustIntervals(t,
		[2]int64{0, 10}, [2]int64{1, 4}, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{5, 6}, [2]int64{9, 9},
	), tr.Intervals())
}

// TestTree_Balanced keeps height logarithmic for sorted insertion order.
func TestTree_Balanced(t *testing.T) {
	tr := interval.NewTree()
	for i := int64(0); i < 1024; i++ {
		require.NoError(t, tr.InsertRange(i, i+2))
	}
	assert.Equal(t, 1024, tr.Len())
	// AVL bound: h < 1.44 log2(n+2)
	assert.LessOrEqual(t, tr.Height(), 15)
}

// TestTree_PointInsideIsFound checks that every point of every stored interval
// reports that interval.
func TestTree_PointInsideIsFound(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	ivs := randomIntervals(r, 200, 500, 20)
	tr := interval.NewTree(ivs...)

	for _, iv := range ivs {
		for p := iv.Start(); p <= iv.End(); p++ {
			assert.Contains(t, tr.QueryPoint(p), iv, "point %d of %s", p, iv)
			assert.True(t, tr.Contains(p))
		}
	}
}

// oracleInterval adapts Interval to augmentedtree.Interval so the Workiva tree
// can serve as an independent reference implementation. augmentedtree treats
// both bounds as inclusive, the same as Interval.
type oracleInterval struct {
	iv interval.Interval
	id uint64
}

func (o oracleInterval) LowAtDimension(uint64) int64  { return o.iv.Start() }
func (o oracleInterval) HighAtDimension(uint64) int64 { return o.iv.End() }
func (o oracleInterval) ID() uint64                   { return o.id }

func (o oracleInterval) OverlapsAtDimension(other augmentedtree.Interval, d uint64) bool {
	return o.HighAtDimension(d) >= other.LowAtDimension(d) && o.LowAtDimension(d) <= other.HighAtDimension(d)
}

// TestTree_MatchesAugmentedTree compares Query against the Workiva augmented tree
// for random stores and random query ranges.
func TestTree_MatchesAugmentedTree(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	ivs := randomIntervals(r, 500, 2000, 60)

	tr := interval.NewTree(ivs...)
	ref := augmentedtree.New(1)
	for i, iv := range ivs {
		ref.Add(oracleInterval{iv: iv, id: uint64(i + 1)})
	}
	require.Equal(t, uint64(len(ivs)), ref.Len())

	for i := 0; i < 300; i++ {
		s := r.Int64N(2100) - 50
		q, _ := interval.New(s, s+r.Int64N(40))

		var want []interval.Interval
		for _, hit := range ref.Query(oracleInterval{iv: q}) {
			want = append(want, hit.(oracleInterval).iv)
		}
		assert.ElementsMatch(t, want, tr.Query(q), "query %s", q)
	}
}
