package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2025/puzzle"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		err   error
	}{
		{"empty", "", nil, puzzle.ErrEmptyInput},
		{"blank", " \n\n", nil, puzzle.ErrEmptyInput},
		{"single", "abc", []string{"abc"}, nil},
		{"trailing newlines", "a\nb\n\n", []string{"a", "b"}, nil},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}, nil},
		{"interior blank", "a\n\nb", []string{"a", "", "b"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := puzzle.Lines(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSections(t *testing.T) {
	got, err := puzzle.Sections("\n3-5\n10-14\n\n1\n5\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"3-5\n10-14", "1\n5"}, got)

	got, err = puzzle.Sections("a\r\n\r\nb\n\n\n\nc")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, err = puzzle.Sections("\n \n")
	assert.ErrorIs(t, err, puzzle.ErrEmptyInput)
}
