package carve

import (
	"math/rand"

	"github.com/spakin/disjoint"

	"github.com/daedalia/mazegrid/grid"
)

// edge is one candidate passage between physically adjacent cells.
type edge struct {
	a, b *grid.Cell
}

// Kruskal carves by treating every wall as a candidate passage: shuffle
// the full edge list, then walk it, linking a pair only when its cells
// still belong to different components of a disjoint-set forest. After
// cells-1 links every cell shares one component and the remaining edges
// are discarded unread.
//
// The texture sits between BinaryTree's bias and Backtracker's rivers:
// short dead ends sprinkled evenly across the grid.
type Kruskal struct{}

// Method returns MethodKruskal.
func (Kruskal) Method() string { return MethodKruskal }

// Requires reports grid.StateClosed.
func (Kruskal) Requires() grid.State { return grid.StateClosed }

// Apply carves g in place and returns it.
//
// Steps:
//  1. Validate inputs and claim the closed grid.
//  2. Collect each cell's east and south walls; that covers every wall once.
//  3. Shuffle the edges with the caller's RNG.
//  4. Sweep: skip edges inside one component, link and union across two.
//  5. Stop early at cells-1 links; the tree is complete.
func (kr Kruskal) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(kr.Method(), kr.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2. Every interior wall exactly once, row-major.
	edges := make([]edge, 0, 2*g.Size())
	g.EachCell(func(c *grid.Cell) {
		if e := c.East(); e != nil {
			edges = append(edges, edge{a: c, b: e})
		}
		if s := c.South(); s != nil {
			edges = append(edges, edge{a: c, b: s})
		}
	})

	// 3. Randomize the sweep order.
	shuffleEdges(edges, rng)

	// 4. One disjoint-set element per cell, indexed by arena position.
	forest := make([]*disjoint.Element, g.Size())
	g.EachCell(func(c *grid.Cell) {
		forest[c.Index()] = disjoint.NewElement()
	})

	// 5. Merge until the spanning tree is complete.
	linked, want := 0, g.Size()-1
	var ea, eb *disjoint.Element
	for _, e := range edges {
		if linked == want {
			break
		}
		ea, eb = forest[e.a.Index()], forest[e.b.Index()]
		if ea.Find() == eb.Find() {
			continue // already connected, keep the wall
		}
		e.a.Link(e.b)
		disjoint.Union(ea, eb)
		linked++
	}

	return g, nil
}
