// SPDX-License-Identifier: MIT
//
// File: subgraph.go
// Role: Seeded random edge removal.
// Determinism:
//   - Draw order is fixed: one Intn(2^n) for the node, then one Intn(degree)
//     for the neighbour. Same seed + same call sequence ⇒ same removed edges.

package core

import "fmt"

const methodSubgraph = "Subgraph"

// Subgraph removes exactly numEdges undirected edges chosen at random with
// the graph-owned generator and returns them in removal order.
//
// Each draw picks a uniform node; if it still has neighbours, a uniform
// neighbour is picked and the edge is removed in both directions, otherwise
// the draw is discarded and another node is picked.
//
// Errors (graph left unchanged):
//   - ErrInvalidEdgeCount  if numEdges < 0.
//   - ErrInsufficientEdges if numEdges > EdgeCount().
//
// Complexity: O(numEdges · n) expected while edges remain dense; draws that
// land on isolated nodes are retried, so removing nearly every edge of a
// large cube needs many draws.
func (g *Graph) Subgraph(numEdges int) ([]Edge, error) {
	if numEdges < 0 {
		return nil, fmt.Errorf("%s: numEdges=%d: %w", methodSubgraph, numEdges, ErrInvalidEdgeCount)
	}
	if numEdges > g.edges {
		return nil, fmt.Errorf("%s: numEdges=%d > edges=%d: %w", methodSubgraph, numEdges, g.edges, ErrInsufficientEdges)
	}

	removed := make([]Edge, 0, numEdges)
	size := len(g.nodes)
	draws := 0
	var u, v int
	for len(removed) < numEdges {
		draws++
		u = g.rng.Intn(size)
		if len(g.adj[u]) == 0 {
			continue
		}
		v = g.adj[u][g.rng.Intn(len(g.adj[u]))]
		removeAdjacency(g, u, v)
		removed = append(removed, Edge{U: u, V: v})
	}

	g.logger.Debug().
		Int("removed", numEdges).
		Int("draws", draws).
		Int("edges", g.edges).
		Msg("subgraph edges removed")

	return removed, nil
}
