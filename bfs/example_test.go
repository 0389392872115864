package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/hypercube/bfs"
	"github.com/katalvlaran/hypercube/core"
)

// ExampleBFS measures the detour forced by a missing edge.
func ExampleBFS() {
	g, _ := core.NewGraph(3)
	_ = g.RemoveEdge(0, 4) // 000 — 100

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(res.Depth[4], path)
	// Output: 3 [0 2 6 4]
}
