package day02

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/interval"
	"github.com/katalvlaran/aoc2025/puzzle"
)

const sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124"

func TestSample(t *testing.T) {
	s := New()

	ans, err := s.SolvePartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(1227775554), ans.Value)
	assert.Empty(t, ans.Skipped)

	ans, err = s.SolvePartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(4174379265), ans.Value)
}

// isRepeated reports whether id is a block repeated between minReps and
// maxReps times, by string comparison.
func isRepeated(id int64, minReps, maxReps int) bool {
	s := strconv.FormatInt(id, 10)
	for block := 1; block <= len(s)/2; block++ {
		reps := len(s) / block
		if len(s)%block != 0 || reps < minReps || reps > maxReps {
			continue
		}
		if strings.Repeat(s[:block], reps) == s {
			return true
		}
	}

	return false
}

func TestRepeatedIDs_MatchesScan(t *testing.T) {
	ranges := [][2]int64{{1, 2000}, {9990, 12000}, {99990, 200000}, {999990, 1010110}, {222220, 222224}}
	for _, r := range ranges {
		iv, err := interval.New(r[0], r[1])
		require.NoError(t, err)
		for _, reps := range [][2]int{{2, 2}, {2, maxDigits}} {
			got := RepeatedIDs(iv, reps[0], reps[1])
			want := 0
			for id := r[0]; id <= r[1]; id++ {
				if isRepeated(id, reps[0], reps[1]) {
					want++
					assert.True(t, got.Contains(id), "%d missing from %v", id, iv)
				}
			}
			assert.Equal(t, want, got.Cardinality(), "range %v reps %v", iv, reps)
		}
	}
}

func TestRepeatedIDs_NoDoubleCount(t *testing.T) {
	iv, err := interval.New(222222, 222222)
	require.NoError(t, err)
	ids := RepeatedIDs(iv, 2, maxDigits)
	assert.Equal(t, 1, ids.Cardinality())
	assert.True(t, ids.Contains(222222))
}

func TestRepeatedIDs_LargeBounds(t *testing.T) {
	// 19 is prime, so only a single repeated digit could qualify, and
	// 9999999999999999999 does not fit in an int64.
	iv, err := interval.New(9_000_000_000_000_000_000, math.MaxInt64)
	require.NoError(t, err)
	assert.Zero(t, RepeatedIDs(iv, 2, maxDigits).Cardinality())

	iv, err = interval.New(1_111_111_111_111_111_110, 1_111_111_111_111_111_112)
	require.NoError(t, err)
	ids := RepeatedIDs(iv, 2, maxDigits)
	assert.Equal(t, 1, ids.Cardinality())
	assert.True(t, ids.Contains(1_111_111_111_111_111_111))
	assert.Zero(t, RepeatedIDs(iv, 2, 2).Cardinality())
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"11-22", nil},
		{"5-5", nil},
		{"01-22", ErrLeadingZero},
		{"11-022", ErrLeadingZero},
		{"0-5", ErrLeadingZero},
		{"22-11", interval.ErrInvalidRange},
		{"1-2-3", interval.ErrMalformedRange},
		{"abc", interval.ErrMalformedRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseRange(tt.in)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMalformedRangesAreSkipped(t *testing.T) {
	ans, err := New().SolvePartOne("11-22,oops,011-022\n95-115")
	require.NoError(t, err)
	assert.Equal(t, int64(11+22+99), ans.Value)
	require.Len(t, ans.Skipped, 2)

	var pe *interval.ParseError
	require.ErrorAs(t, ans.Skipped[1], &pe)
	assert.Equal(t, 2, pe.Index)
	assert.ErrorIs(t, pe, ErrLeadingZero)
}

func TestEmptyInput(t *testing.T) {
	_, err := New().SolvePartTwo(" \n")
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
