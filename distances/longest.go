package distances

import (
	"github.com/daedalia/mazegrid/grid"
)

// LongestPath returns a longest path through g's link graph using the
// two-pass diameter technique: traverse from an arbitrary cell and take the
// farthest cell A, traverse again from A and take the farthest cell B, then
// reconstruct A…B. In any tree the farthest cell from an arbitrary root is
// an endpoint of some diameter path, so two passes suffice.
//
// The first-pass root defaults to the northwest corner; override it with
// WithStart. MaxDepth is ignored: a limited traversal cannot witness the
// diameter. The guarantee holds on trees only, which every generating
// carver produces; braided grids yield a long, but not necessarily longest,
// path.
//
// The endpoints are the first and last elements of the returned slice.
// Errors: ErrGridNil, ErrStartNotInGrid, ErrOptionViolation.
func LongestPath(g *grid.Grid, opts ...Option) ([]*grid.Cell, error) {
	// 1. Validate input grid.
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Resolve options; surface any recorded violation.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Choose the first-pass root.
	start := dopts.Start
	if start == nil {
		start = g.At(0, 0)
	} else if start.Grid() != g {
		return nil, ErrStartNotInGrid
	}

	// 4. First pass finds one diameter endpoint.
	full := DefaultOptions()
	first := run(start, full)
	a, _ := first.Farthest()

	// 5. Second pass, rooted at that endpoint, finds the other and the path.
	second := run(a, full)
	b, _ := second.Farthest()

	return second.PathTo(b)
}
