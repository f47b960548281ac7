package carve

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/daedalia/mazegrid/grid"
)

// Wilson carves an unbiased maze by loop-erased random walks. One cell
// seeds the maze; every round starts a walk from a random outside cell and
// wanders until it touches the maze, recording for each visited cell the
// direction last taken. Revisiting a cell overwrites that record, which
// erases any loop the walk made. Replaying the records from the walk's
// origin then yields a simple path, which is linked and absorbed.
//
// Same uniform distribution as AldousBroder, mirrored cost profile: Wilson
// crawls while the maze is tiny and accelerates as it grows.
type Wilson struct{}

// Method returns MethodWilson.
func (Wilson) Method() string { return MethodWilson }

// Requires reports grid.StateClosed.
func (Wilson) Requires() grid.State { return grid.StateClosed }

// Apply carves g in place and returns it.
//
// Steps:
//  1. Validate inputs and claim the closed grid.
//  2. Seed the maze with one random cell.
//  3. Walk from a random unvisited cell until the maze is touched,
//     overwriting each cell's outgoing step to erase loops on the fly.
//  4. Replay the surviving steps, linking and absorbing the path.
//  5. Repeat until no unvisited cells remain.
func (wl Wilson) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(wl.Method(), wl.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2. First cell joins for free.
	first, err := g.RandomCell(rng)
	if err != nil {
		return nil, wrapf(wl.Method(), err)
	}
	inMaze := mapset.New[*grid.Cell]()
	inMaze.Put(first)

	unvisited := make([]*grid.Cell, 0, g.Size()-1)
	g.EachCell(func(c *grid.Cell) {
		if c != first {
			unvisited = append(unvisited, c)
		}
	})

	var (
		origin, cur, next *grid.Cell
		neighbors         []*grid.Cell
	)
	for len(unvisited) > 0 {
		// 3. Loop-erased walk; steps holds each cell's latest exit.
		origin = unvisited[rng.Intn(len(unvisited))]
		steps := make(map[*grid.Cell]*grid.Cell)
		for cur = origin; !inMaze.Has(cur); cur = next {
			neighbors = cur.Neighbors()
			next = neighbors[rng.Intn(len(neighbors))]
			steps[cur] = next
		}

		// 4. Replay from the origin; the overwrites left a simple path.
		for cur = origin; !inMaze.Has(cur); cur = next {
			next = steps[cur]
			cur.Link(next)
			inMaze.Put(cur)
		}

		// 5. Compact the unvisited pool in place.
		keep := unvisited[:0]
		for _, c := range unvisited {
			if !inMaze.Has(c) {
				keep = append(keep, c)
			}
		}
		unvisited = keep
	}

	return g, nil
}
