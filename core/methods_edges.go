// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge removal: RemoveEdge, Isolate, Edges, plus the shared removeAdjacency helper.
// Determinism:
//   - Removals delete in place and keep the surviving neighbours in construction order.
//   - Edges() lists each undirected edge once with U < V, sorted by (U, V).
// AI-HINT (file):
//   - Edges are stored symmetrically; every mutation goes through removeAdjacency
//     so both directions disappear together and g.edges stays exact.

package core

import (
	"fmt"
	"slices"
)

// RemoveEdge deletes the undirected edge {u, v} in both directions.
//
// Errors:
//   - ErrNodeNotFound if u or v is outside the cube.
//   - ErrEdgeNotFound if u and v are not currently adjacent.
//
// Complexity: O(n).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	if !removeAdjacency(g, u, v) {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, g.nodes[u].Bits, g.nodes[v].Bits)
	}
	g.logger.Debug().Str("u", g.nodes[u].Bits).Str("v", g.nodes[v].Bits).Msg("edge removed")

	return nil
}

// Isolate removes every edge incident to value and returns how many were removed.
// Isolating an already isolated node removes nothing.
//
// Complexity: O(n²) (n edges, each an O(n) scan on the far side).
func (g *Graph) Isolate(value int) (int, error) {
	if !g.HasNode(value) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, value)
	}
	removed := 0
	for len(g.adj[value]) > 0 {
		// Always take the head; removeAdjacency shifts the rest down.
		removeAdjacency(g, value, g.adj[value][0])
		removed++
	}
	g.logger.Debug().Str("node", g.nodes[value].Bits).Int("removed", removed).Msg("node isolated")

	return removed, nil
}

// Edges returns every current undirected edge once, with U < V, sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, nbrs := range g.adj {
		for _, v := range sortedCopy(nbrs) {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// removeAdjacency deletes v from u's list and u from v's list and decrements
// the edge counter. It reports false (and changes nothing) if the edge is absent.
func removeAdjacency(g *Graph, u, v int) bool {
	iu := indexOf(g.adj[u], v)
	if iu < 0 {
		return false
	}
	iv := indexOf(g.adj[v], u)
	g.adj[u] = deleteAt(g.adj[u], iu)
	g.adj[v] = deleteAt(g.adj[v], iv)
	g.edges--

	return true
}

// deleteAt removes s[i] keeping order. s shares its backing array with the
// construction buffer; the capacity bound set in NewGraph keeps lists disjoint.
func deleteAt(s []int, i int) []int {
	copy(s[i:], s[i+1:])

	return s[:len(s)-1]
}

// sortedCopy returns an ascending copy of s.
func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	slices.Sort(out)

	return out
}
