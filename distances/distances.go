// Package distances implements breadth-first distance computation over the
// link graph of a grid. See doc.go for the full contract.
package distances

import (
	"github.com/daedalia/mazegrid/grid"
)

// queueItem pairs a discovered cell with its depth from the root.
type queueItem struct {
	cell  *grid.Cell
	depth int
}

// walker encapsulates state during one traversal.
type walker struct {
	opts  Options
	res   *Distances
	queue []queueItem
	seen  []bool // visited flags indexed by arena position
}

// Compute runs a breadth-first traversal of g's link graph rooted at start
// and returns the resulting snapshot. Unreached cells are omitted, never
// given a sentinel distance, so the call succeeds on disconnected and
// braided graphs alike.
//
// Errors: ErrGridNil, ErrNilStart, ErrStartNotInGrid, ErrOptionViolation.
func Compute(g *grid.Grid, start *grid.Cell, opts ...Option) (*Distances, error) {
	// 1. Validate input grid.
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Validate the root belongs to it.
	if start == nil {
		return nil, ErrNilStart
	}
	if start.Grid() != g {
		return nil, ErrStartNotInGrid
	}

	// 3. Resolve options; surface any recorded violation.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 4. Traverse.
	return run(start, dopts), nil
}

// From is the cell-rooted convenience: the same traversal rooted at start,
// without a separate grid argument. Errors: ErrNilStart, ErrOptionViolation.
func From(start *grid.Cell, opts ...Option) (*Distances, error) {
	if start == nil || start.Grid() == nil {
		return nil, ErrNilStart
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	return run(start, dopts), nil
}

// ShortestPath composes Compute and PathTo: the returned sequence starts
// with start, ends with goal, and every consecutive pair is linked.
func ShortestPath(g *grid.Grid, start, goal *grid.Cell, opts ...Option) ([]*grid.Cell, error) {
	d, err := Compute(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return d.PathTo(goal)
}

// run performs the traversal. start is non-nil and owned by a live grid.
func run(start *grid.Cell, opts Options) *Distances {
	size := start.Grid().Size()
	w := &walker{
		opts: opts,
		res: &Distances{
			Root:   start,
			Order:  make([]*grid.Cell, 0, size),
			Depth:  make(map[*grid.Cell]int, size),
			Parent: make(map[*grid.Cell]*grid.Cell, size),
		},
		queue: make([]queueItem, 0, size),
		seen:  make([]bool, size),
	}

	// Seed with the root at depth 0.
	w.seen[start.Index()] = true
	w.queue = append(w.queue, queueItem{cell: start, depth: 0})

	// Plain FIFO over a slice; head never outruns append.
	var it queueItem
	for head := 0; head < len(w.queue); head++ {
		it = w.queue[head]
		w.res.Order = append(w.res.Order, it.cell)
		w.res.Depth[it.cell] = it.depth
		w.expand(it)
	}

	return w.res
}

// expand enqueues the unvisited linked neighbors of it.cell, in canonical
// direction order so traversal is deterministic.
func (w *walker) expand(it queueItem) {
	// Honor the depth limit: cells at MaxDepth are included, none beyond.
	if w.opts.MaxDepth > 0 && it.depth+1 > w.opts.MaxDepth {
		return
	}

	var n *grid.Cell
	for _, d := range grid.Directions() {
		n = it.cell.Neighbor(d)
		if n == nil || !it.cell.Linked(n) {
			continue
		}
		if w.seen[n.Index()] {
			continue
		}
		w.seen[n.Index()] = true
		w.res.Parent[n] = it.cell
		w.queue = append(w.queue, queueItem{cell: n, depth: it.depth + 1})
	}
}
