// SPDX-License-Identifier: MIT
// Package core_test checks that read-only queries can share one graph.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercube/astar"
	"github.com/katalvlaran/hypercube/core"
	"github.com/katalvlaran/hypercube/greedy"
)

// TestConcurrentReaders runs searches from many goroutines over one damaged
// cube. Nothing mutates the graph, so results must match a sequential run.
func TestConcurrentReaders(t *testing.T) {
	g, err := core.NewGraph(7, core.WithSeed(21))
	require.NoError(t, err)
	_, err = g.Subgraph(150)
	require.NoError(t, err)
	before := g.AdjacencyList()

	const workers = 16
	want := make([]int, workers)
	for w := 0; w < workers; w++ {
		want[w] = hops(g, w)
	}

	got := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			_, _ = greedy.Path(g, id, g.NodeCount()-1-id)
			got[id] = hops(g, id)
		}(w)
	}
	wg.Wait()

	require.Equal(t, want, got)
	require.Equal(t, before, g.AdjacencyList())
}

// hops returns the A* hop count from id to its antipode, or -1.
func hops(g *core.Graph, id int) int {
	res, err := astar.ShortestPath(g, id, g.NodeCount()-1-id)
	if err != nil {
		return -1
	}

	return res.EdgeCount()
}

// TestCloneIsIndependent damages clones in parallel; the source stays intact.
func TestCloneIsIndependent(t *testing.T) {
	g, err := core.NewGraph(6, core.WithSeed(8))
	require.NoError(t, err)
	full := g.EdgeCount()

	const clones = 8
	removed := make([][]core.Edge, clones)
	var wg sync.WaitGroup
	wg.Add(clones)
	for i := 0; i < clones; i++ {
		c := g.Clone()
		go func(id int, c *core.Graph) {
			defer wg.Done()
			removed[id], _ = c.Subgraph(40)
		}(i, c)
	}
	wg.Wait()

	require.Equal(t, full, g.EdgeCount())
	for i := 1; i < clones; i++ {
		// Every clone replays the same seed.
		require.Equal(t, removed[0], removed[i])
	}
}
