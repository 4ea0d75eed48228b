package day01

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

var sample = strings.Join([]string{
	"L68", "L30", "R48", "L5", "R60", "L55", "L1", "L99", "R14", "L82",
}, "\n")

var extended = sample + "\n" + strings.Join([]string{
	"L32", "R1000", "L1000", "R1", "R1000", "L234", "R32", "R1000", "R99", "R202",
}, "\n")

func newSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := New(DefaultStart)
	require.NoError(t, err)

	return s
}

func TestSample(t *testing.T) {
	s := newSolver(t)

	ans, err := s.SolvePartOne(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ans.Value)
	assert.Empty(t, ans.Skipped)

	ans, err = s.SolvePartTwo(sample)
	require.NoError(t, err)
	assert.Equal(t, int64(6), ans.Value)

	ans, err = s.SolvePartTwo(extended)
	require.NoError(t, err)
	assert.Equal(t, int64(54), ans.Value)
}

// partTwoByClicks turns the dial one click at a time.
func partTwoByClicks(start int64, rots []Rotation) int64 {
	pos, zeros := start, int64(0)
	for _, r := range rots {
		for i := int64(0); i < r.Dist; i++ {
			pos = mod(pos + int64(r.Dir))
			if pos == 0 {
				zeros++
			}
		}
	}

	return zeros
}

func TestPartTwoMatchesClickByClick(t *testing.T) {
	for _, start := range []int{0, 1, 50, 99} {
		s, err := New(start)
		require.NoError(t, err)
		rots, _, err := parse(extended)
		require.NoError(t, err)

		ans, err := s.SolvePartTwo(extended)
		require.NoError(t, err)
		assert.Equal(t, partTwoByClicks(int64(start), rots), ans.Value, "start %d", start)
	}
}

func TestNew_BadStart(t *testing.T) {
	for _, start := range []int{-1, DialSize, 1000} {
		_, err := New(start)
		assert.ErrorIs(t, err, ErrBadStart)
	}
}

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in   string
		want Rotation
		ok   bool
	}{
		{"L68", Rotation{Dir: -1, Dist: 68}, true},
		{"R0", Rotation{Dir: 1, Dist: 0}, true},
		{"R1000", Rotation{Dir: 1, Dist: 1000}, true},
		{"X5", Rotation{}, false},
		{"L", Rotation{}, false},
		{"L-5", Rotation{}, false},
		{"Rx", Rotation{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRotation(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, puzzle.ErrMalformedLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	s := newSolver(t)
	ans, err := s.SolvePartOne("L50\nbogus\nR100\n")
	require.NoError(t, err)
	assert.Equal(t, int64(2), ans.Value)
	require.Len(t, ans.Skipped, 1)

	var pe *puzzle.ParseError
	require.ErrorAs(t, ans.Skipped[0], &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "bogus", pe.Text)
}

func TestEmptyInput(t *testing.T) {
	_, err := newSolver(t).SolvePartOne("\n")
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
