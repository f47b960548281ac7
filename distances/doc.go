// Package distances computes hop distances, shortest paths and the longest
// path over a grid's link graph.
//
// What:
//
//	A breadth-first traversal rooted at one cell. Every edge of the link
//	graph has uniform weight 1, so plain BFS yields exact shortest
//	distances; the historical "Dijkstra" name for this engine describes an
//	unweighted special case, and the implementation is honest about it.
//
//	The result is a snapshot: a Distances value records the visit order,
//	per-cell depth and BFS-tree parents for the link graph as it was at the
//	moment of computation. Later link mutations do not alter an existing
//	result. Cells that cannot be reached from the root are simply absent
//	from Depth, never mapped to a sentinel value.
//
// Why:
//
//	Level building needs three queries over a finished maze: how far is
//	every cell from here (entrance placement), what is the corridor from A
//	to B (guaranteed walkable routes), and which two cells lie farthest
//	apart (stairs at the far end of the longest path). All three ride on
//	the same traversal.
//
// Longest path:
//
//	LongestPath runs the classic two-pass tree-diameter technique: BFS from
//	an arbitrary cell, take the farthest cell A, BFS again from A, take the
//	farthest cell B; the path A…B is a longest path. The guarantee holds on
//	trees only. Every generating carver in this module produces a spanning
//	tree; braided (loop-added) grids are outside the guarantee.
//
// Determinism:
//
//	Neighbor expansion follows the canonical direction order, so Order,
//	Farthest tie-breaking and reconstructed paths are identical across runs
//	on identical link graphs.
//
// Complexity:
//
//   - Compute/From: O(cells + links) time, O(cells) memory.
//   - PathTo: O(path length).
//   - LongestPath: two traversals plus one reconstruction, O(cells + links).
//
// Options:
//
//   - WithMaxDepth(d) — stop expanding beyond depth d (d > 0; 0 = no limit;
//     negative values surface as ErrOptionViolation). Ignored by LongestPath,
//     which always traverses fully.
//   - WithStart(c)    — first-pass root for LongestPath; ignored elsewhere.
//
// Errors:
//
//   - ErrGridNil         — Compute/ShortestPath/LongestPath given a nil grid.
//   - ErrNilStart        — nil start cell.
//   - ErrStartNotInGrid  — start cell owned by a different grid.
//   - ErrGoalUnreached   — PathTo target absent from the snapshot; callers
//     can pre-check with DistanceTo.
//   - ErrOptionViolation — invalid option value, surfaced at call time.
package distances
