package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypercube/bfs"
	"github.com/katalvlaran/hypercube/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, err = bfs.BFS(g, 8)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_FullCubeDepthIsBitDistance checks every depth on a full 6-cube.
func TestBFS_FullCubeDepthIsBitDistance(t *testing.T) {
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	const start = 0b101100
	res, err := bfs.BFS(g, start)
	require.NoError(t, err)

	src, _ := g.Node(start)
	require.Len(t, res.Order, g.NodeCount())
	for _, n := range g.Nodes() {
		assert.Equal(t, src.BitDistance(n), res.Depth[n.Value], n.Bits)
	}
	// Depths never decrease along the visit order.
	for i := 1; i < len(res.Order); i++ {
		require.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[res.Order[i]])
	}
	assert.Equal(t, -1, res.Parent[start])
}

func TestBFS_PathTo(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	p, err := res.PathTo(7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 6, 7}, p)

	p, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, p)
}

// TestBFS_DamagedCube stops at the component boundary.
func TestBFS_DamagedCube(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	_, err = g.Isolate(7)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 7)
	assert.False(t, res.Reached(7))
	assert.Equal(t, -1, res.Depth[7])
	assert.Equal(t, 2, res.Depth[6])

	_, err = res.PathTo(7)
	require.ErrorIs(t, err, core.ErrNoPathFound)

	// Losing the direct 000—001 edge forces a detour of three hops.
	require.NoError(t, g.RemoveEdge(0, 1))
	res, err = bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth[1])
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
	assert.False(t, res.Reached(3))

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 32)
}

func TestBFS_Hooks(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	var seen []string
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(n core.Node, depth int) error {
		seen = append(seen, n.Bits)

		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"00", "10", "01", "11"}, seen)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(core.Node, int) error { return stop }))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
