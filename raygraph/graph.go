package raygraph

import (
	"errors"
	"slices"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// Graph is the ray DAG produced by Build. It is immutable once built.
// Nodes are created in row order, so every child has a larger NodeID than
// each of its parents.
type Graph struct {
	nodes  []Node
	roots  []NodeID
	index  map[Position]NodeID
	splits int
}

// Parse reads a grid from text and builds its ray graph.
// Returns ErrEmptyInput for blank text and gridgraph.ErrNonRectangular for
// ragged rows.
func Parse(text string, opts ...Option) (*Graph, error) {
	grid, err := gridgraph.ParseCharGrid(text, gridgraph.DefaultGridOptions())
	if errors.Is(err, gridgraph.ErrEmptyGrid) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	return Build(grid, opts...)
}

// Build walks grid top to bottom and records every ray origin and split.
//
// Steps:
//  1. Each start marker on row 0 becomes a root and an active column.
//  2. On every checkpoint row, the active columns holding a split marker
//     split. The decision uses the state before the row, so columns in a
//     row act simultaneously and their processing order does not matter.
//  3. Rays in a split column become parents of the nodes at col-1 and
//     col+1 (one node per position, shared by every parent).
//  4. Next active columns = (active − split) ∪ children in bounds.
func Build(grid *gridgraph.CharGrid, opts ...Option) (*Graph, error) {
	if grid == nil {
		return nil, ErrEmptyInput
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	g := &Graph{index: make(map[Position]NodeID)}
	// column → rays currently falling through it
	active := make(map[int][]NodeID)
	for x := 0; x < grid.Width; x++ {
		if grid.At(x, 0) != o.StartMarker {
			continue
		}
		id, _ := g.nodeAt(Position{Row: 0, Col: x})
		g.roots = append(g.roots, id)
		active[x] = []NodeID{id}
	}

	for row := o.RowStep; row < grid.Height && len(active) > 0; row += o.RowStep {
		cols := sortedKeys(active)
		split := make(map[int]bool)
		for _, c := range cols {
			if grid.At(c, row) == o.SplitMarker {
				split[c] = true
			}
		}
		if len(split) == 0 {
			continue
		}
		g.splits += len(split)

		next := make(map[int][]NodeID, len(active)+len(split))
		for _, c := range cols {
			if !split[c] {
				next[c] = append(next[c], active[c]...)
			}
		}
		for _, c := range cols {
			if !split[c] {
				continue
			}
			for _, cc := range [2]int{c - 1, c + 1} {
				if !grid.InBounds(cc, row) {
					continue // dropped, not wrapped
				}
				child, created := g.nodeAt(Position{Row: row, Col: cc})
				for _, p := range active[c] {
					g.nodes[p].Children = append(g.nodes[p].Children, child)
				}
				if created {
					next[cc] = append(next[cc], child)
				}
			}
		}
		active = next
	}

	return g, nil
}

// nodeAt returns the node at pos, creating it if needed.
func (g *Graph) nodeAt(pos Position) (NodeID, bool) {
	if id, ok := g.index[pos]; ok {
		return id, false
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Pos: pos})
	g.index[pos] = id

	return id, true
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Splits returns how many split events occurred. Rays merged into the same
// column split once.
func (g *Graph) Splits() int { return g.splits }

// Roots returns the start nodes in column order.
func (g *Graph) Roots() []NodeID { return slices.Clone(g.roots) }

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return Node{}, false
	}
	n := g.nodes[id]
	n.Children = slices.Clone(n.Children)

	return n, true
}

// Lookup returns the node sitting at pos, if any.
func (g *Graph) Lookup(pos Position) (NodeID, bool) {
	id, ok := g.index[pos]
	return id, ok
}

// Leaves returns how many nodes have no children (terminated rays).
func (g *Graph) Leaves() int {
	n := 0
	for _, nd := range g.nodes {
		if len(nd.Children) == 0 {
			n++
		}
	}

	return n
}

func sortedKeys(m map[int][]NodeID) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
