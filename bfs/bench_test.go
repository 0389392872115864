package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hypercube/bfs"
	"github.com/katalvlaran/hypercube/core"
)

// BenchmarkBFS_Cube16 traverses a full 16-cube (65536 nodes, 524288 edges).
func BenchmarkBFS_Cube16(b *testing.B) {
	g, err := core.NewGraph(16)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_DamagedCube16 traverses a 16-cube with a quarter of its edges removed.
func BenchmarkBFS_DamagedCube16(b *testing.B) {
	g, err := core.NewGraph(16, core.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	if _, err = g.Subgraph(g.EdgeCount() / 4); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
