package gridgraph

import (
	"fmt"
	"strings"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewCharGrid constructs a CharGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewCharGrid(rows [][]byte, opts GridOptions) (*CharGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return newCharGrid(w, h, cells, opts.Conn), nil
}

// ParseCharGrid splits text into lines (LF or CRLF) and builds a CharGrid.
// A single trailing newline is ignored; any other empty line is a row of
// width 0 and therefore makes the grid non-rectangular.
func ParseCharGrid(text string, opts GridOptions) (*CharGrid, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}

	return NewCharGrid(rows, opts)
}

func newCharGrid(w, h int, cells []byte, conn Connectivity) *CharGrid {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &CharGrid{
		Width:           w,
		Height:          h,
		Conn:            conn,
		cells:           cells,
		neighborOffsets: offsets,
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *CharGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at column x, row y. It panics if (x,y) is out of bounds,
// like a slice index would.
func (g *CharGrid) At(x, y int) byte {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("gridgraph: cell (%d,%d) out of range %dx%d", x, y, g.Width, g.Height))
	}

	return g.cells[g.index(x, y)]
}

// Row returns a copy of row y.
func (g *CharGrid) Row(y int) []byte {
	out := make([]byte, g.Width)
	copy(out, g.cells[y*g.Width:(y+1)*g.Width])

	return out
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *CharGrid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// String renders the grid back to newline-separated text.
func (g *CharGrid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.Height)
	for y := 0; y < g.Height; y++ {
		sb.Write(g.cells[y*g.Width : (y+1)*g.Width])
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *CharGrid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *CharGrid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
