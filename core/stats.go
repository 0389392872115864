// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: Read-only damage summary of a hypercube.
// AI-HINT (file):
//   - Stats() is an O(2^n) snapshot; use it to describe how far Subgraph and
//     Isolate have eroded the cube before running searches.

package core

// GraphStats is a point-in-time summary of a hypercube.
type GraphStats struct {
	Dimension int `json:"dimension"`
	NodeCount int `json:"nodes"`
	EdgeCount int `json:"edges"`

	// RemovedEdges is n·2^n/2 − EdgeCount.
	RemovedEdges int `json:"removedEdges"`

	// Isolated counts nodes with no neighbours left.
	Isolated int `json:"isolated"`

	MinDegree int `json:"minDegree"`
	MaxDegree int `json:"maxDegree"`

	// DegreeHistogram[d] is the number of nodes of degree d, 0 ≤ d ≤ n.
	DegreeHistogram []int `json:"degreeHistogram"`
}

// Stats returns a snapshot of g's size and degree distribution.
//
// Complexity: O(2^n) time, O(n) space.
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		Dimension:       g.dim,
		NodeCount:       len(g.nodes),
		EdgeCount:       g.edges,
		RemovedEdges:    g.dim*len(g.nodes)/2 - g.edges,
		MinDegree:       g.dim,
		DegreeHistogram: make([]int, g.dim+1),
	}
	var d int
	for _, nbrs := range g.adj {
		d = len(nbrs)
		stats.DegreeHistogram[d]++
		if d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	stats.Isolated = stats.DegreeHistogram[0]

	return &stats
}
