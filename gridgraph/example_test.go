package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2025/gridgraph"
)

// ExampleCharGrid_CountNeighbors counts diagonal and orthogonal neighbours
// carrying the same symbol.
//
//	..@
//	.@@
//	@..
func ExampleCharGrid_CountNeighbors() {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	g, err := gridgraph.ParseCharGrid("..@\n.@@\n@..\n", opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Width, g.Height)
	fmt.Println(g.CountNeighbors(1, 1, '@'))
	// Output:
	// 3 3
	// 3
}
