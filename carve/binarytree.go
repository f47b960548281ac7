package carve

import (
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// BinaryTree carves the simplest maze this package offers: one pass over
// the cells, each flipping a coin between its northern and eastern
// neighbor and linking the winner. Cells on the northern edge can only go
// east, cells on the eastern edge only north, and the northeast corner
// links nowhere at all.
//
// The result is a spanning tree with a visible diagonal bias and two
// unbroken corridors along the northern and eastern borders. That bias is
// the point: BinaryTree is the baseline other carvers are judged against.
type BinaryTree struct{}

// Method returns MethodBinaryTree.
func (BinaryTree) Method() string { return MethodBinaryTree }

// Requires reports grid.StateClosed.
func (BinaryTree) Requires() grid.State { return grid.StateClosed }

// Apply carves g in place and returns it.
//
// Steps:
//  1. Validate inputs and claim the closed grid.
//  2. Visit cells in row-major order; collect the north/east candidates.
//  3. Link one candidate chosen by rng; skip the cornered cell that has none.
func (bt BinaryTree) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(bt.Method(), bt.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2.-3. One pass, one link per cell at most.
	candidates := make([]*grid.Cell, 0, 2)
	g.EachCell(func(c *grid.Cell) {
		candidates = candidates[:0]
		if n := c.North(); n != nil {
			candidates = append(candidates, n)
		}
		if e := c.East(); e != nil {
			candidates = append(candidates, e)
		}
		if len(candidates) == 0 {
			return // the northeast corner
		}
		c.Link(candidates[rng.Intn(len(candidates))])
	})

	return g, nil
}
