// SPDX-License-Identifier: MIT
// Package: mazegrid/carve
//
// types.go — the Carver contract, method registry and functional options
// shared by every maze-carving strategy in this package.

package carve

import (
	"fmt"
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// Supported carving methods.
//
// Each constant doubles as the prefix of every error the corresponding
// carver returns, so logs read "wilson: carve: rng is required".
const (
	// MethodBinaryTree carves by linking each cell north or east.
	// Fast and heavily biased; requires a closed grid.
	MethodBinaryTree = "binarytree"

	// MethodAldousBroder carves an unbiased uniform spanning tree by
	// random walk; requires a closed grid.
	MethodAldousBroder = "aldousbroder"

	// MethodBacktracker carves long winding corridors by depth-first
	// random walk with explicit backtracking; requires a closed grid.
	MethodBacktracker = "backtracker"

	// MethodDivision carves by recursive subdivision of an open grid,
	// erecting walls instead of opening passages.
	MethodDivision = "division"

	// MethodWilson carves an unbiased uniform spanning tree by
	// loop-erased random walks; requires a closed grid.
	MethodWilson = "wilson"

	// MethodKruskal carves by randomized edge merging over disjoint
	// sets; requires a closed grid.
	MethodKruskal = "kruskal"

	// MethodBraid removes dead ends from an already carved maze,
	// introducing loops; requires a carved grid.
	MethodBraid = "braid"
)

// DefaultBraidProbability is the dead-end removal rate used when no
// WithBraidProbability option is supplied: every dead end is opened.
const DefaultBraidProbability = 1.0

// Carver is the common contract of every maze-generation strategy.
//
// Apply mutates g in place and returns it for chaining. The grid must be
// in the state reported by Requires; anything else fails with an error
// wrapping grid.ErrWrongState and leaves the grid untouched. A successful
// Apply transitions the grid to grid.StateCarved, so re-running a carver
// over its own output is rejected the same way.
//
// All randomness is drawn from rng. Same grid shape, same seed, same
// carver: byte-for-byte the same maze.
type Carver interface {
	// Method returns the registry constant naming this strategy.
	Method() string

	// Requires reports the grid state this strategy consumes.
	Requires() grid.State

	// Apply carves g using rng and returns g.
	Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error)
}

// Options aggregates every tunable of the Carve dispatcher.
// Zero value is NOT usable; obtain a baseline via DefaultOptions and
// adjust through With* helpers.
type Options struct {
	// Method selects the carving strategy. Unknown values surface
	// ErrUnknownMethod at Carve time.
	Method string

	// BraidP is the dead-end removal probability, consulted only when
	// Method is MethodBraid. Must lie in [0,1].
	BraidP float64
}

// Option mutates Options. Constructors panic on meaningless input (out of
// range probability); unknown method strings are deferred to Carve, which
// reports them as ErrUnknownMethod.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//
//	Method: MethodBacktracker — the house default for playable mazes,
//	BraidP: DefaultBraidProbability.
func DefaultOptions() Options {
	return Options{
		Method: MethodBacktracker,
		BraidP: DefaultBraidProbability,
	}
}

// WithMethod selects the carving strategy by registry constant.
func WithMethod(method string) Option {
	return func(o *Options) { o.Method = method }
}

// WithBraidProbability sets the dead-end removal rate for MethodBraid.
// Panics if p is outside [0,1]; a probability has no meaning beyond the
// unit interval, and catching that at option-construction time beats a
// silent misbehaving maze.
func WithBraidProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("carve: WithBraidProbability(%v): probability must lie in [0,1]", p))
	}
	return func(o *Options) { o.BraidP = p }
}

// Carve runs the strategy selected by opts against g.
//
// It is the single entry point used by callers that pick the algorithm at
// runtime; code with a fixed strategy may instantiate the concrete carver
// directly and call Apply.
//
// Returns:
//   - the carved grid on success;
//   - ErrUnknownMethod if opts name no registered carver;
//   - the underlying carver's validation errors otherwise.
func Carve(g *grid.Grid, rng *rand.Rand, opts ...Option) (*grid.Grid, error) {
	// 1. Resolve options over the defaults.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 2. Look up the strategy.
	c, err := carverFor(o)
	if err != nil {
		return nil, err
	}

	// 3. Delegate; the carver owns all further validation.
	return c.Apply(g, rng)
}

// For returns the Carver registered under method, letting callers inspect
// Requires before committing to a grid constructor. Braid comes back with
// the default probability; set the field directly for another rate.
func For(method string) (Carver, error) {
	switch method {
	case MethodBinaryTree:
		return BinaryTree{}, nil
	case MethodAldousBroder:
		return AldousBroder{}, nil
	case MethodBacktracker:
		return Backtracker{}, nil
	case MethodDivision:
		return Division{}, nil
	case MethodWilson:
		return Wilson{}, nil
	case MethodKruskal:
		return Kruskal{}, nil
	case MethodBraid:
		return Braid{P: DefaultBraidProbability}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// carverFor maps resolved Options onto a concrete Carver.
func carverFor(o Options) (Carver, error) {
	c, err := For(o.Method)
	if err != nil {
		return nil, err
	}
	if b, ok := c.(Braid); ok {
		b.P = o.BraidP
		return b, nil
	}

	return c, nil
}

// begin runs the validation sequence shared by every carver: presence of
// the grid, presence of the RNG, then the atomic state check-and-claim.
// On success the grid is already transitioned to grid.StateCarved.
func begin(method string, required grid.State, g *grid.Grid, rng *rand.Rand) error {
	if g == nil {
		return wrapf(method, ErrGridNil)
	}
	if rng == nil {
		return wrapf(method, ErrNilRand)
	}
	if err := g.BeginCarve(required); err != nil {
		return fmt.Errorf("%s: requires %s state, have %s: %w", method, required, g.State(), err)
	}

	return nil
}
