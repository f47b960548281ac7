// Package distances provides tunable options and error definitions for
// breadth-first distance queries over a grid.
package distances

import (
	"errors"
	"fmt"

	"github.com/daedalia/mazegrid/grid"
)

// Sentinel errors for distance computation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distances: grid is nil")

	// ErrNilStart is returned when the root cell is nil.
	ErrNilStart = errors.New("distances: start cell is nil")

	// ErrStartNotInGrid is returned when the root cell belongs to a
	// different grid than the one being queried.
	ErrStartNotInGrid = errors.New("distances: start cell not in grid")

	// ErrGoalUnreached is returned by PathTo when the goal is absent from
	// the snapshot. Check reachability first with DistanceTo.
	ErrGoalUnreached = errors.New("distances: goal not reached from root")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distances: invalid option supplied")
)

// Option configures a traversal via functional arguments. An invalid value
// (e.g. a negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a traversal.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth. A value of 0
	// explicitly disables any depth limit.
	MaxDepth int

	// Start overrides the first-pass root of LongestPath. Ignored by
	// Compute, From and ShortestPath, which take their root explicitly,
	// the same way an unused option is ignored rather than rejected.
	Start *grid.Cell

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no start override.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		Start:    nil,
		err:      nil,
	}
}

// WithMaxDepth stops the traversal at the given depth.
//
//	d > 0: include cells up to depth d, none beyond
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithStart sets the first-pass root for LongestPath. A nil cell keeps the
// default (the grid's northwest corner).
func WithStart(c *grid.Cell) Option {
	return func(o *Options) {
		if c != nil {
			o.Start = c
		}
	}
}

// Distances is the snapshot a traversal produces:
//   - Root: the cell the traversal started from.
//   - Order: cells in visit sequence (root first, nondecreasing depth).
//   - Depth: map from cell to its hop distance from Root; unreached cells
//     are absent.
//   - Parent: map from cell to its predecessor in the BFS tree; Root has
//     no entry.
type Distances struct {
	Root   *grid.Cell
	Order  []*grid.Cell
	Depth  map[*grid.Cell]int
	Parent map[*grid.Cell]*grid.Cell
}

// DistanceTo returns the hop distance to c and whether c was reached.
func (d *Distances) DistanceTo(c *grid.Cell) (int, bool) {
	depth, ok := d.Depth[c]

	return depth, ok
}

// Farthest returns the first cell in visit order attaining the maximum
// depth, with that depth. On a single-cell snapshot this is the root at
// depth 0.
func (d *Distances) Farthest() (*grid.Cell, int) {
	var (
		best      *grid.Cell
		bestDepth = -1
	)
	for _, c := range d.Order {
		if dep := d.Depth[c]; dep > bestDepth {
			best, bestDepth = c, dep
		}
	}

	return best, bestDepth
}

// PathTo reconstructs the shortest path from Root to goal by walking the
// Parent chain backwards and reversing. On a spanning tree the path is
// unique; on a braided graph it is one of the equally short alternatives.
// The walk uses the computation-time snapshot, so links removed after
// Compute do not disturb it. Returns ErrGoalUnreached when goal is absent.
func (d *Distances) PathTo(goal *grid.Cell) ([]*grid.Cell, error) {
	if goal == nil {
		return nil, fmt.Errorf("distances: no path to nil cell: %w", ErrGoalUnreached)
	}
	if _, ok := d.Depth[goal]; !ok {
		return nil, fmt.Errorf("distances: no path to (%d,%d): %w", goal.Row(), goal.Column(), ErrGoalUnreached)
	}

	// Walk goal → root; Parent has no entry for the root, ending the loop.
	path := make([]*grid.Cell, 0, d.Depth[goal]+1)
	for cur := goal; cur != nil; cur = d.Parent[cur] {
		path = append(path, cur)
	}

	// Reverse to get root → goal.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
