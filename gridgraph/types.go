package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// CharGrid is a rectangular byte grid. It is immutable once built.
// Width and Height define dimensions; cells are stored row-major.
// neighborOffsets is precomputed from Conn for adjacency lookups.
type CharGrid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []byte
	neighborOffsets [][2]int
}
