// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for hypercube construction and damage.
package core_test

import (
	"testing"

	"github.com/katalvlaran/hypercube/core"
)

// BenchmarkNewGraph_16 measures building a full 16-cube (65536 nodes).
func BenchmarkNewGraph_16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = core.NewGraph(16)
	}
}

// BenchmarkSubgraph_Quarter measures removing a quarter of a 14-cube's edges.
// Construction is excluded; every iteration starts from a fresh clone.
func BenchmarkSubgraph_Quarter(b *testing.B) {
	base, err := core.NewGraph(14, core.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	k := base.EdgeCount() / 4

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		if _, err = g.Subgraph(k); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClone_14 measures copying a 14-cube's adjacency.
func BenchmarkClone_14(b *testing.B) {
	g, err := core.NewGraph(14)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
