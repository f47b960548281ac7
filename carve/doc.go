// Package carve turns a fresh lattice from mazegrid/grid into a maze.
//
// What
//
//	Seven strategies behind one contract. Each Carver consumes a grid in a
//	declared initial state, rewires its links in place and hands the grid
//	back carved:
//
//	  BinaryTree   — closed grid; each cell links north or east. Strongly
//	                 biased (two unbroken border corridors), but O(n) with
//	                 a single pass and no bookkeeping.
//	  AldousBroder — closed grid; uniform spanning tree by plain random
//	                 walk. Unbiased, potentially slow on large grids.
//	  Backtracker  — closed grid; depth-first random walk with an explicit
//	                 stack. Long, winding corridors and few dead ends.
//	  Division     — open grid; recursive subdivision, building walls
//	                 instead of passages. Produces rooms-and-halls texture.
//	  Wilson       — closed grid; uniform spanning tree by loop-erased
//	                 random walks. Unbiased, slow start, fast finish.
//	  Kruskal      — closed grid; randomized edge merge over disjoint
//	                 sets. Uniform texture with short dead ends.
//	  Braid        — carved grid; erases dead ends with probability P,
//	                 turning a perfect maze into one with loops.
//
// Why
//
//	Every strategy except Braid produces a spanning tree over the cells:
//	exactly one path between any two cells, no loops, no unreachable
//	pockets. That property is what makes the companion distances package
//	meaningful, and it is guarded by the state machine: a carver checks the
//	grid's state before touching a single link, so a half-open grid can
//	never be silently over-carved.
//
// Determinism
//
//	No global random state, ever. A carver draws exclusively from the
//	*rand.Rand handed to Apply; equal shapes and equal seeds reproduce the
//	maze exactly, which the tests rely on.
//
// Usage
//
//	g, err := grid.NewClosed(12, 12)
//	// handle err
//	rng := rand.New(rand.NewSource(7))
//	if _, err := carve.Carve(g, rng, carve.WithMethod(carve.MethodWilson)); err != nil {
//	        // handle err
//	}
//
// Errors
//
//   - ErrGridNil, ErrNilRand — missing inputs.
//   - ErrUnknownMethod — dispatcher received an unregistered Method string.
//   - ErrInvalidProbability — Braid.P outside [0,1].
//   - grid.ErrWrongState — wrapped with the method name when the grid is
//     not in the state the carver requires, or was carved already.
//
// Complexity
//
//	BinaryTree, Division, Kruskal, Braid are linear-ish in the cell count
//	(Kruskal pays an extra shuffle); Backtracker visits every cell at most
//	twice; AldousBroder and Wilson are randomized with expected super-linear
//	walks, the price of uniformity.
package carve
