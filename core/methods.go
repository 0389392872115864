// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Hypercube construction and read-only queries.
// Determinism:
//   - Neighbour lists are emitted in bit-position order (MSB first) and
//     removals never reorder the survivors.
// Complexity:
//   - NewGraph: O(n·2^n) time and space.
//   - Queries: O(1) except Neighbors/Nodes, which copy.

package core

import (
	"fmt"

	"github.com/rs/zerolog"
)

// NewGraph builds the full hypercube of dimension dim.
//
// For node v and bit position i (0 = most significant), the neighbour is
// v + 2^(n-1-i) when bit i is 0 and v − 2^(n-1-i) when it is 1, so every
// node receives exactly dim neighbours with O(1) arithmetic each.
//
// Errors: ErrInvalidDimension when dim < 1 or dim > MaxDimension.
func NewGraph(dim int, opts ...Option) (*Graph, error) {
	if dim < 1 || dim > MaxDimension {
		return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidDimension, dim, MaxDimension)
	}
	cfg := newGraphConfig(opts...)

	size := 1 << dim
	g := &Graph{
		dim:    dim,
		nodes:  make([]Node, size),
		adj:    make([][]int, size),
		edges:  dim * size / 2,
		seed:   cfg.seed,
		rng:    cfg.rng,
		logger: cfg.logger,
	}

	// One backing array for all neighbour lists keeps construction to two allocations.
	backing := make([]int, dim*size)
	var v, i, mask int
	for v = 0; v < size; v++ {
		g.nodes[v] = NewNode(v, dim)
		nbrs := backing[v*dim : (v+1)*dim : (v+1)*dim]
		for i = 0; i < dim; i++ {
			mask = 1 << (dim - 1 - i)
			if v&mask == 0 {
				nbrs[i] = v + mask
			} else {
				nbrs[i] = v - mask
			}
		}
		g.adj[v] = nbrs
	}

	g.logger.Debug().
		Int("dimension", dim).
		Int("nodes", size).
		Int("edges", g.edges).
		Int64("seed", g.seed).
		Msg("hypercube built")

	return g, nil
}

// Dimension returns n.
func (g *Graph) Dimension() int { return g.dim }

// NodeCount returns 2^n.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the current number of undirected edges. It always equals
// half the sum of all neighbour-list lengths.
func (g *Graph) EdgeCount() int { return g.edges }

// Logger returns the logger configured with WithLogger.
func (g *Graph) Logger() zerolog.Logger { return g.logger }

// Seed returns the seed the removal generator was created from.
func (g *Graph) Seed() int64 { return g.seed }

// HasNode reports whether value labels a node of the cube.
func (g *Graph) HasNode(value int) bool {
	return value >= 0 && value < len(g.nodes)
}

// Node returns the node labelled value.
func (g *Graph) Node(value int) (Node, error) {
	if !g.HasNode(value) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, value)
	}

	return g.nodes[value], nil
}

// Nodes returns every node in ascending value order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// ParseBits validates bits against the cube dimension and returns its node.
func (g *Graph) ParseBits(bits string) (Node, error) {
	v, err := parseBits(bits, g.dim)
	if err != nil {
		return Node{}, err
	}

	return g.nodes[v], nil
}

// Neighbors returns a copy of the neighbour values of value, in construction order.
func (g *Graph) Neighbors(value int) ([]int, error) {
	if !g.HasNode(value) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, value)
	}
	out := make([]int, len(g.adj[value]))
	copy(out, g.adj[value])

	return out, nil
}

// NeighborNodes is Neighbors resolved to Nodes.
func (g *Graph) NeighborNodes(value int) ([]Node, error) {
	if !g.HasNode(value) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, value)
	}
	out := make([]Node, len(g.adj[value]))
	for i, nv := range g.adj[value] {
		out[i] = g.nodes[nv]
	}

	return out, nil
}

// Degree returns the current number of neighbours of value (0 for unknown values).
func (g *Graph) Degree(value int) int {
	if !g.HasNode(value) {
		return 0
	}

	return len(g.adj[value])
}

// HasEdge reports whether u and v are currently adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}

	return indexOf(g.adj[u], v) >= 0
}

// AdjacencyList returns a deep copy of the adjacency, value → neighbour values.
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adj))
	for v, nbrs := range g.adj {
		out[v] = append([]int(nil), nbrs...)
	}

	return out
}

// indexOf returns the position of x in s, or -1.
func indexOf(s []int, x int) int {
	for i, y := range s {
		if y == x {
			return i
		}
	}

	return -1
}
