package carve

import (
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// AldousBroder carves an unbiased maze: every spanning tree of the grid is
// an equally likely outcome. The algorithm is a plain random walk that
// links into each cell the first time the walk stumbles onto it and
// otherwise just keeps wandering.
//
// Simplicity has a price. The walk has no memory, so the tail end, when
// only a few cells remain unvisited, can take a long time to find them.
// Wilson covers the same distribution with the opposite cost profile.
type AldousBroder struct{}

// Method returns MethodAldousBroder.
func (AldousBroder) Method() string { return MethodAldousBroder }

// Requires reports grid.StateClosed.
func (AldousBroder) Requires() grid.State { return grid.StateClosed }

// Apply carves g in place and returns it.
//
// Steps:
//  1. Validate inputs and claim the closed grid.
//  2. Start the walk at a random cell, marked visited.
//  3. Step to a uniformly random physical neighbor; if that neighbor is
//     still unvisited, link the pair and mark it.
//  4. Stop once every cell has been visited.
func (ab AldousBroder) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(ab.Method(), ab.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2. Pick the entry point; rng was validated, so no error can surface.
	cur, err := g.RandomCell(rng)
	if err != nil {
		return nil, wrapf(ab.Method(), err)
	}
	visited := make([]bool, g.Size())
	visited[cur.Index()] = true
	remaining := g.Size() - 1

	// 3.-4. Wander until the last cell is swallowed by the tree.
	var next *grid.Cell
	for remaining > 0 {
		neighbors := cur.Neighbors()
		next = neighbors[rng.Intn(len(neighbors))]
		if !visited[next.Index()] {
			cur.Link(next)
			visited[next.Index()] = true
			remaining--
		}
		cur = next
	}

	return g, nil
}
