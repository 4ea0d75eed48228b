// Package gridgraph treats a rectangular grid of single-byte cells as a graph
// of positions, with tunable 4- or 8-neighbour connectivity.
//
// What:
//
//   - CharGrid wraps a rectangular [][]byte, deep-copied and immutable.
//   - ParseCharGrid reads newline-separated text (LF or CRLF).
//   - Neighbour iteration and counting honour GridOptions.Conn.
//   - Map returns a transformed copy, so iterative algorithms never mutate
//     a grid another caller still holds.
//
// Why:
//
//   - Puzzle boards: markers, walls and paths laid out as ASCII art.
//   - Cellular rules: "how many neighbours carry symbol b?"
//
// Complexity:
//
//   - NewCharGrid / ParseCharGrid: O(W×H) time and memory.
//   - At / InBounds / Coordinate:  O(1).
//   - CountNeighbors:              O(d), d = 4 or 8.
//   - Find / Count / Map:          O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (a malformed grid).
package gridgraph
