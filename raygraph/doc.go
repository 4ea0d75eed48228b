// Package raygraph simulates rays falling through a character grid and
// splitting at marker cells, and counts the distinct paths they can take.
//
// What:
//
//   - Every start marker on row 0 emits a ray that moves down one checkpoint
//     row at a time (RowStep rows, default 2).
//   - A ray reaching a split marker stops there and two new rays continue at
//     col-1 and col+1. A child that would leave the grid is dropped.
//   - Rays meeting in the same column merge: they share one node per grid
//     position, so the subtree below is built and counted once.
//   - Graph keeps the resulting DAG in an arena of nodes addressed by NodeID;
//     parent/child links are plain indices.
//
// A single ray moves through these states:
//
//	Active(col) ──split──► Active(col-1), Active(col+1)
//	Active(col) ──bottom / edge──► Terminated
//
// Each Terminated leaf contributes exactly one path.
//
// Complexity:
//
//   - Build:       O(H/step × A log A), A = active columns per row.
//   - CountPaths:  O(V + E), memoized, iterative (no recursion depth limit).
//   - CountSplits: O(H/step × A) with a column set and no graph.
//
// Errors:
//
//   - ErrEmptyInput:               no grid rows at all.
//   - ErrBadRowStep:               RowStep < 1.
//   - gridgraph.ErrNonRectangular: rows of differing lengths.
//
// A grid without any start marker is valid and yields zero paths.
package raygraph
