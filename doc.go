// Package hypercube builds n-dimensional hypercube graphs, damages them
// reproducibly, and routes across them with two search strategies.
//
// 🚀 What is hypercube?
//
//	The caller-facing surface over four subpackages:
//		• core/       construction, seeded edge removal, node/edge primitives
//		• greedy/     best-effort weight-guided walk with backtracking
//		• astar/      minimum-hop search over an indexed priority queue
//		• fringe/     the lazy decrease-key priority queue used by astar
//	plus bfs/ (exact hop distances) and converters/ (gonum export, components).
//
// Every node is addressed by its bit-string, most significant bit first:
//
//	   011──────111
//	  ╱│        ╱│
//	001──────101 │
//	 │ 010─────┼─110
//	 │╱        │╱
//	000──────100
//
// Quick start:
//
//	g, _ := hypercube.BuildGraph(4, 42)
//	_ = g.Subgraph(10)                           // remove 10 random edges
//	res, err := g.ShortestPath("0000", "1111")  // minimum hops, or ErrNoPathFound
//	res, err = g.GreedyPath("0000", "1111")     // valid route, maybe longer
//
// Outcomes are distinct, errors.Is-checkable sentinels: ErrInvalidDimension,
// ErrInvalidBitstring, ErrNoPathFound and ErrInsufficientEdges. A Graph is
// not safe for concurrent mutation; concurrent searches on an unchanging
// graph are fine.
//
//	go install github.com/katalvlaran/hypercube/cmd/hypercube@latest
package hypercube
