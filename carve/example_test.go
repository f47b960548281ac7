package carve_test

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/daedalia/mazegrid/carve"
	"github.com/daedalia/mazegrid/distances"
	"github.com/daedalia/mazegrid/grid"
)

// Carve a 6x6 maze with the default strategy and show the structural
// guarantees every tree carver gives: cells-1 passages, all reachable.
func ExampleCarve() {
	g, _ := grid.NewClosed(6, 6)
	rng := rand.New(rand.NewSource(7))

	if _, err := carve.Carve(g, rng); err != nil {
		fmt.Println("carve failed:", err)
		return
	}

	links := 0
	g.EachCell(func(c *grid.Cell) { links += len(c.Links()) })
	d, _ := distances.Compute(g, g.At(0, 0))

	fmt.Println("state:", g.State())
	fmt.Println("passages:", links/2)
	fmt.Println("reachable:", len(d.Order))
	// Output:
	// state: carved
	// passages: 35
	// reachable: 36
}

// Select a strategy at runtime and braid the result so the maze gains
// loops: after a full-probability braid no dead end survives.
func ExampleWithMethod() {
	g, _ := grid.NewClosed(5, 5)
	rng := rand.New(rand.NewSource(11))

	if _, err := carve.Carve(g, rng, carve.WithMethod(carve.MethodWilson)); err != nil {
		fmt.Println("carve failed:", err)
		return
	}
	fmt.Println("dead ends remain:", len(g.DeadEnds()) > 0)

	if _, err := carve.Carve(g, rng, carve.WithMethod(carve.MethodBraid)); err != nil {
		fmt.Println("braid failed:", err)
		return
	}
	fmt.Println("dead ends after braid:", len(g.DeadEnds()))
	// Output:
	// dead ends remain: true
	// dead ends after braid: 0
}

// A carver refuses grids in the wrong state instead of silently
// over-carving them; the sentinel survives the wrap chain.
func ExampleCarve_wrongState() {
	g, _ := grid.NewOpen(4, 4)
	rng := rand.New(rand.NewSource(1))

	_, err := carve.Carve(g, rng, carve.WithMethod(carve.MethodBinaryTree))
	fmt.Println("wrong state:", errors.Is(err, grid.ErrWrongState))
	fmt.Println("grid still:", g.State())
	// Output:
	// wrong state: true
	// grid still: open
}
