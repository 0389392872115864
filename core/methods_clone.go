// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning a (possibly damaged) hypercube.
// Determinism:
//   - The clone's generator is reseeded from Seed(), so a clone replays the
//     removal sequence of a fresh graph, not the remaining stream of the source.

package core

import "math/rand"

// Clone returns an independent copy of g: same dimension, same current
// adjacency, same logger, and a fresh generator seeded with g.Seed().
//
// Complexity: O(n·2^n).
func (g *Graph) Clone() *Graph {
	size := len(g.nodes)
	out := &Graph{
		dim:    g.dim,
		nodes:  g.nodes, // Nodes are immutable values; sharing is safe.
		adj:    make([][]int, size),
		edges:  g.edges,
		seed:   g.seed,
		rng:    rand.New(rand.NewSource(g.seed)),
		logger: g.logger,
	}
	backing := make([]int, g.dim*size)
	for v, nbrs := range g.adj {
		dst := backing[v*g.dim : v*g.dim+len(nbrs) : (v+1)*g.dim]
		copy(dst, nbrs)
		out.adj[v] = dst
	}

	return out
}
