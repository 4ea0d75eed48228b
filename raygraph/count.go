package raygraph

// CountPaths returns the number of distinct root-to-leaf paths, summed over
// all roots. Zero roots yield 0. A split whose children both fall off the grid
// is a leaf and counts as one path.
func (g *Graph) CountPaths() uint64 {
	c := newPathCounter(g)
	var total uint64
	for _, r := range g.roots {
		total += c.count(r)
	}

	return total
}

// PathsFrom returns the number of distinct paths from id down to a leaf,
// or 0 if id is not part of the graph.
func (g *Graph) PathsFrom(id NodeID) uint64 {
	if id < 0 || int(id) >= len(g.nodes) {
		return 0
	}

	return newPathCounter(g).count(id)
}

// pathCounter holds the memo table for one counting pass. Each node owns one
// grid position, so memo[id] is the count for that position.
type pathCounter struct {
	g     *Graph
	memo  []uint64
	state []uint8
}

func newPathCounter(g *Graph) *pathCounter {
	return &pathCounter{
		g:     g,
		memo:  make([]uint64, len(g.nodes)),
		state: make([]uint8, len(g.nodes)),
	}
}

// count is a post-order walk with an explicit stack: a leaf counts 1, an
// inner node the sum of its children. A node may be pushed more than once
// before it is visited; later copies are dropped once it is Black.
func (c *pathCounter) count(start NodeID) uint64 {
	stack := []NodeID{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		switch c.state[id] {
		case White:
			c.state[id] = Gray
			for _, ch := range c.g.nodes[id].Children {
				if c.state[ch] == White {
					stack = append(stack, ch)
				}
			}
		case Gray:
			stack = stack[:len(stack)-1]
			children := c.g.nodes[id].Children
			if len(children) == 0 {
				c.memo[id] = 1
			} else {
				var sum uint64
				for _, ch := range children {
					sum += c.memo[ch]
				}
				c.memo[id] = sum
			}
			c.state[id] = Black
		default:
			stack = stack[:len(stack)-1]
		}
	}

	return c.memo[start]
}
