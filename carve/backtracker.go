package carve

import (
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// Backtracker carves by randomized depth-first search: bore a corridor
// until boxed in, then retreat along the carved path to the nearest cell
// with an uncarved neighbor and resume from there. The result has the
// longest, windiest corridors of any strategy here and very few dead ends.
//
// The walk keeps its trail on an explicit stack, so grid size is bounded
// by memory, not by goroutine stack depth.
type Backtracker struct{}

// Method returns MethodBacktracker.
func (Backtracker) Method() string { return MethodBacktracker }

// Requires reports grid.StateClosed.
func (Backtracker) Requires() grid.State { return grid.StateClosed }

// Apply carves g in place and returns it.
//
// Steps:
//  1. Validate inputs and claim the closed grid.
//  2. Push a random start cell, mark it visited.
//  3. At the stack top, gather unvisited physical neighbors. None left:
//     pop and backtrack. Otherwise link to a random one, mark it, push it.
//  4. Stop when the stack drains; every cell has been both entered and
//     exhausted by then.
func (bk Backtracker) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(bk.Method(), bk.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2. Seed the trail.
	start, err := g.RandomCell(rng)
	if err != nil {
		return nil, wrapf(bk.Method(), err)
	}
	visited := make([]bool, g.Size())
	visited[start.Index()] = true
	stack := make([]*grid.Cell, 0, g.Size())
	stack = append(stack, start)

	// 3.-4. Depth-first wander with explicit backtracking.
	candidates := make([]*grid.Cell, 0, 4)
	var top, next *grid.Cell
	for len(stack) > 0 {
		top = stack[len(stack)-1]

		candidates = candidates[:0]
		for _, n := range top.Neighbors() {
			if !visited[n.Index()] {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1] // boxed in, retreat
			continue
		}

		next = candidates[rng.Intn(len(candidates))]
		top.Link(next)
		visited[next.Index()] = true
		stack = append(stack, next)
	}

	return g, nil
}
