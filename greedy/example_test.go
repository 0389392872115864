package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/greedy"
)

// ExamplePath routes around a removed edge by backtracking once.
func ExamplePath() {
	g, _ := core.NewGraph(2)
	_ = g.RemoveEdge(2, 3) // 10 — 11

	res, err := greedy.Path(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path.Bits(), res.Backtracks)
	// Output: [00 01 11] 1
}
