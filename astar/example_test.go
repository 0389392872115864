package astar_test

import (
	"fmt"

	"github.com/katalvlaran/hypercube/astar"
	"github.com/katalvlaran/hypercube/core"
)

// ExampleShortestPath finds a corner-to-corner route on the 3-cube.
// On a full cube the hop count always equals the number of differing bits.
func ExampleShortestPath() {
	g, err := core.NewGraph(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	from, _ := g.ParseBits("000")
	to, _ := g.ParseBits("111")

	res, err := astar.ShortestPath(g, from.Value, to.Value)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.EdgeCount(), from.BitDistance(to))
	// Output: 3 3
}

// ExampleShortestPath_isolated shows the no-path outcome once a node loses every edge.
func ExampleShortestPath_isolated() {
	g, _ := core.NewGraph(3)
	_, _ = g.Isolate(0)

	_, err := astar.ShortestPath(g, 0, 7)
	fmt.Println(err)
	// Output: astar: 000→111: core: no path found
}
