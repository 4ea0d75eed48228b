package gridgraph

// CountNeighbors returns how many neighbours of (x,y), according to g.Conn,
// hold the byte b. Cells outside the grid are not neighbours.
// Complexity: O(d), d = 4 or 8.
func (g *CharGrid) CountNeighbors(x, y int, b byte) int {
	n := 0
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.cells[g.index(nx, ny)] == b {
			n++
		}
	}

	return n
}

// Find returns the row-major indices of every cell holding b, in scan order.
// Use Coordinate to convert back to (x,y).
func (g *CharGrid) Find(b byte) []int {
	var out []int
	for i, c := range g.cells {
		if c == b {
			out = append(out, i)
		}
	}

	return out
}

// Count returns how many cells hold b.
func (g *CharGrid) Count(b byte) int {
	n := 0
	for _, c := range g.cells {
		if c == b {
			n++
		}
	}

	return n
}

// Map returns a new grid where every cell is replaced by fn(x, y, cell).
// fn always sees the receiver's values, so all cells change at once.
// The receiver is left untouched.
// Complexity: O(W×H).
func (g *CharGrid) Map(fn func(x, y int, c byte) byte) *CharGrid {
	cells := make([]byte, len(g.cells))
	for i, c := range g.cells {
		x, y := g.Coordinate(i)
		cells[i] = fn(x, y, c)
	}

	return newCharGrid(g.Width, g.Height, cells, g.Conn)
}
