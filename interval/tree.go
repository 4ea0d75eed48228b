package interval

// node is a single AVL node. maxEnd is the largest end bound stored in the
// subtree rooted here, height is the AVL height (leaf = 1).
type node struct {
	iv          Interval
	maxEnd      int64
	height      int
	left, right *node
}

// Tree is an AVL-balanced interval tree ordered by start bound. Intervals with
// equal starts are kept in insertion order. Duplicates are stored as-is; use
// MergeAll to coalesce.
//
// A Tree is not safe for concurrent mutation.
type Tree struct {
	root *node
	size int
}

// NewTree builds a tree holding ivs. Complexity: O(n log n).
func NewTree(ivs ...Interval) *Tree {
	t := &Tree{}
	for _, iv := range ivs {
		t.Insert(iv)
	}

	return t
}

// Len returns the number of stored intervals.
func (t *Tree) Len() int { return t.size }

// Height returns the AVL height of the tree (0 when empty).
func (t *Tree) Height() int { return height(t.root) }

// Insert adds iv to the tree. No deduplication is performed.
// Complexity: O(log n).
func (t *Tree) Insert(iv Interval) {
	t.root = insert(t.root, iv)
	t.size++
}

// InsertRange validates and inserts [start, end]. Returns ErrInvalidRange and
// leaves the tree unchanged if start > end.
func (t *Tree) InsertRange(start, end int64) error {
	iv, err := New(start, end)
	if err != nil {
		return err
	}
	t.Insert(iv)

	return nil
}

// Query returns every stored interval that shares at least one integer with q,
// ordered by start bound. Returns nil when nothing overlaps.
// Complexity: O(log n + k).
func (t *Tree) Query(q Interval) []Interval {
	var out []Interval
	// explicit stack for in-order traversal with pruning
	stack := make([]*node, 0, height(t.root))
	n := t.root
	for n != nil || len(stack) > 0 {
		// descend left while the left spine can still reach q.start
		for n != nil {
			if n.maxEnd < q.start {
				n = nil // nothing in this subtree ends late enough
				break
			}
			stack = append(stack, n)
			n = n.left
		}
		if len(stack) == 0 {
			break
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.iv.start > q.end {
			// in-order: every remaining node starts even later
			break
		}
		if n.iv.end >= q.start {
			out = append(out, n.iv)
		}
		n = n.right
	}

	return out
}

// QueryPoint returns every stored interval containing p. Bounds are inclusive.
func (t *Tree) QueryPoint(p int64) []Interval {
	return t.Query(Point(p))
}

// Contains reports whether any stored interval contains p.
// Complexity: O(log n).
func (t *Tree) Contains(p int64) bool {
	n := t.root
	for n != nil {
		if n.maxEnd < p {
			return false
		}
		if n.iv.Contains(p) {
			return true
		}
		// the left subtree can only help if something there ends at or after p
		if n.left != nil && n.left.maxEnd >= p {
			n = n.left
			continue
		}
		if n.iv.start > p {
			return false
		}
		n = n.right
	}

	return false
}

// Intervals returns all stored intervals ordered by start bound.
func (t *Tree) Intervals() []Interval {
	out := make([]Interval, 0, t.size)
	stack := make([]*node, 0, height(t.root))
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.iv)
		n = n.right
	}

	return out
}

// MergeAll returns the sorted, disjoint union of the stored intervals.
// Overlapping and adjoining intervals (next.start ≤ current.end+1) are joined.
// The tree itself is not modified.
func (t *Tree) MergeAll() []Interval {
	return mergeSorted(t.Intervals())
}

func insert(n *node, iv Interval) *node {
	if n == nil {
		return &node{iv: iv, maxEnd: iv.end, height: 1}
	}
	if iv.start < n.iv.start {
		n.left = insert(n.left, iv)
	} else {
		n.right = insert(n.right, iv)
	}

	return rebalance(n)
}

func height(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

// update recomputes height and maxEnd from the children.
func update(n *node) {
	lh, rh := height(n.left), height(n.right)
	n.height = max(lh, rh) + 1
	n.maxEnd = n.iv.end
	if n.left != nil && n.left.maxEnd > n.maxEnd {
		n.maxEnd = n.left.maxEnd
	}
	if n.right != nil && n.right.maxEnd > n.maxEnd {
		n.maxEnd = n.right.maxEnd
	}
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	update(y)
	update(x)

	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)

	return y
}

func rebalance(n *node) *node {
	update(n)
	switch bf := height(n.left) - height(n.right); {
	case bf > 1:
		if height(n.left.left) < height(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if height(n.right.right) < height(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}
