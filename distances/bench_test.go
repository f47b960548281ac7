// Package distances_test provides benchmarks for the traversal engine.
package distances_test

import (
	"testing"

	"github.com/daedalia/mazegrid/distances"
	"github.com/daedalia/mazegrid/grid"
)

// benchGrid builds a fully-open lattice; the worst case for queue volume.
func benchGrid(b *testing.B, rows, cols int) *grid.Grid {
	b.Helper()
	g, err := grid.NewOpen(rows, cols)
	if err != nil {
		b.Fatalf("NewOpen: %v", err)
	}

	return g
}

// BenchmarkCompute measures one full traversal of a level-sized lattice.
func BenchmarkCompute(b *testing.B) {
	g := benchGrid(b, 64, 64)
	start := g.At(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distances.Compute(g, start)
	}
}

// BenchmarkShortestPath adds path reconstruction on top of the traversal.
func BenchmarkShortestPath(b *testing.B) {
	g := benchGrid(b, 64, 64)
	start, goal := g.At(0, 0), g.At(63, 63)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distances.ShortestPath(g, start, goal)
	}
}

// BenchmarkLongestPath runs both diameter passes.
func BenchmarkLongestPath(b *testing.B) {
	g := benchGrid(b, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distances.LongestPath(g)
	}
}
