package carve_test

import (
	"math/rand"
	"testing"

	"github.com/daedalia/mazegrid/carve"
	"github.com/daedalia/mazegrid/grid"
)

// Carvers consume their input, so every iteration pays for a fresh grid;
// the 64x64 construction cost is shared by all entries and keeps the
// numbers comparable across strategies.

func benchCarve(b *testing.B, method string) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	fresh := grid.NewClosed
	if method == carve.MethodDivision {
		fresh = grid.NewOpen
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := fresh(64, 64)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = carve.Carve(g, rng, carve.WithMethod(method)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCarve_BinaryTree(b *testing.B)   { benchCarve(b, carve.MethodBinaryTree) }
func BenchmarkCarve_AldousBroder(b *testing.B) { benchCarve(b, carve.MethodAldousBroder) }
func BenchmarkCarve_Backtracker(b *testing.B)  { benchCarve(b, carve.MethodBacktracker) }
func BenchmarkCarve_Division(b *testing.B)     { benchCarve(b, carve.MethodDivision) }
func BenchmarkCarve_Wilson(b *testing.B)       { benchCarve(b, carve.MethodWilson) }
func BenchmarkCarve_Kruskal(b *testing.B)      { benchCarve(b, carve.MethodKruskal) }

func BenchmarkCarve_Braid(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := grid.NewClosed(64, 64)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = (carve.Backtracker{}).Apply(g, rng); err != nil {
			b.Fatal(err)
		}
		if _, err = (carve.Braid{P: 1}).Apply(g, rng); err != nil {
			b.Fatal(err)
		}
	}
}
