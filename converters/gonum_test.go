package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercube/converters"
	"github.com/katalvlaran/hypercube/core"
)

func TestToGonum(t *testing.T) {
	g, err := core.NewGraph(4, core.WithSeed(6))
	require.NoError(t, err)
	_, err = g.Subgraph(10)
	require.NoError(t, err)

	ug := converters.ToGonum(g)
	assert.Equal(t, g.NodeCount(), ug.Nodes().Len())
	assert.Equal(t, g.EdgeCount(), ug.Edges().Len())
	for _, e := range g.Edges() {
		assert.True(t, ug.HasEdgeBetween(int64(e.U), int64(e.V)))
	}
}

func TestComponents(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}, converters.Components(g))

	_, err = g.Isolate(0)
	require.NoError(t, err)
	_, err = g.Isolate(5)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2, 3, 4, 6, 7}, {5}}, converters.Components(g))
}

// TestComponents_CoverEveryNode partitions a heavily damaged cube.
func TestComponents_CoverEveryNode(t *testing.T) {
	g, err := core.NewGraph(6, core.WithSeed(13))
	require.NoError(t, err)
	_, err = g.Subgraph(150)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i, comp := range converters.Components(g) {
		for _, v := range comp {
			_, dup := seen[v]
			require.False(t, dup, "node %d in two components", v)
			seen[v] = i
		}
	}
	require.Len(t, seen, g.NodeCount())

	for _, e := range g.Edges() {
		assert.Equal(t, seen[e.U], seen[e.V])
	}
}

func TestPathExists(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	assert.True(t, converters.PathExists(g, 0, 3))

	_, err = g.Isolate(3)
	require.NoError(t, err)
	assert.False(t, converters.PathExists(g, 0, 3))
	assert.True(t, converters.PathExists(g, 1, 2))
	assert.False(t, converters.PathExists(g, 0, 9))
}
