package carve

import (
	"fmt"
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// Braid post-processes an already carved maze, opening dead ends so the
// maze gains loops. Each dead end survives with probability 1-P; at P=1
// no dead end survives, at P=0 the grid is returned untouched. When a
// dead end is opened it links to an unlinked physical neighbor, preferring
// neighbors that are themselves dead ends so two culs-de-sac merge into
// one corridor.
//
// Braid is the one strategy here that deliberately breaks the spanning
// tree property: after braiding, pairs of cells may be joined by multiple
// routes, and longest-path queries over the grid lose their guarantee.
type Braid struct {
	// P is the probability that any given dead end is opened.
	// Must lie in [0,1]; out-of-range values fail with
	// ErrInvalidProbability.
	P float64
}

// Method returns MethodBraid.
func (Braid) Method() string { return MethodBraid }

// Requires reports grid.StateCarved.
func (Braid) Requires() grid.State { return grid.StateCarved }

// Apply braids g in place and returns it.
//
// Steps:
//  1. Validate the grid, the probability, the RNG and the carved state.
//  2. Snapshot the dead ends in row-major order.
//  3. For each that still is one, roll rng; on success link it to an
//     unlinked neighbor, dead-end neighbors first.
func (br Braid) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validation; parameter range sits between presence checks, see
	//    the priority note in errors.go.
	if g == nil {
		return nil, wrapf(br.Method(), ErrGridNil)
	}
	if br.P < 0 || br.P > 1 {
		return nil, wrapf(br.Method(), ErrInvalidProbability)
	}
	if rng == nil {
		return nil, wrapf(br.Method(), ErrNilRand)
	}
	if err := g.BeginCarve(br.Requires()); err != nil {
		return nil, fmt.Errorf("%s: requires %s state, have %s: %w", br.Method(), br.Requires(), g.State(), err)
	}

	// 2. Fixed snapshot: cells un-deadended along the way are skipped,
	//    not rediscovered.
	deadEnds := g.DeadEnds()

	var dead, others []*grid.Cell
	for _, c := range deadEnds {
		if len(c.Links()) != 1 {
			continue // a previous merge already opened this one
		}
		if rng.Float64() >= br.P {
			continue // spared; Float64 < 1 keeps P=1 unconditional
		}

		// 3. Candidates are walls of c; prefer fellow dead ends.
		dead, others = dead[:0], others[:0]
		for _, n := range c.Neighbors() {
			if c.Linked(n) {
				continue
			}
			if len(n.Links()) == 1 {
				dead = append(dead, n)
			} else {
				others = append(others, n)
			}
		}
		pool := dead
		if len(pool) == 0 {
			pool = others
		}
		if len(pool) == 0 {
			continue // single-neighbor cell on a degenerate grid
		}
		c.Link(pool[rng.Intn(len(pool))])
	}

	return g, nil
}
