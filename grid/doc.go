// Package grid provides the rectangular cell lattice that maze generation
// and distance queries operate on.
//
// What:
//
//	A Grid owns rows × columns Cells in a flat, row-major arena. Each Cell
//	knows its up-to-four physical neighbors (north, south, east, west) and
//	keeps a mutable set of links: the subset of those neighbors that are
//	currently passable. Physical adjacency is wired once at construction and
//	never changes; only links and the opaque tile marker mutate afterwards.
//
// Why:
//
//	Maze algorithms need two distinct relations over the same lattice: where
//	a cell could connect (adjacency) and where it does connect (links).
//	Keeping both on the Cell makes every generation strategy a local
//	operation: inspect neighbors, link or unlink, move on.
//
// Initial states:
//
//	NewClosed(rows, cols) — all walls up: every cell allocated, adjacency
//	wired, zero links. Starting point for carvers that open passages.
//	NewOpen(rows, cols)   — no walls: every physically-adjacent pair is
//	pre-linked. Starting point for carvers that cut walls instead.
//
//	A successful generation pass moves the grid to StateCarved via
//	BeginCarve, so applying a second pass (or the wrong kind of pass) is
//	rejected instead of silently producing a garbled maze.
//
// Storage:
//
//	Cells live in one flat slice; neighbor references are arena indices,
//	not pointers, with -1 marking an absent neighbor. Index mapping is
//	row*columns + column. Cell pointers handed out by At, EachCell and
//	friends stay valid for the life of the Grid.
//
// Determinism:
//
//	Nothing in this package touches a global random source. RandomCell takes
//	the caller's *rand.Rand; Neighbors and Links enumerate in fixed
//	direction order (North, South, East, West) so downstream traversals are
//	reproducible.
//
// Complexity:
//
//   - Construction: O(rows·columns) time and memory.
//   - At, Link, Unlink, Linked: O(1).
//   - EachCell, DeadEnds: O(rows·columns).
//
// Errors:
//
//   - ErrBadDimensions — constructor called with rows < 1 or columns < 1.
//   - ErrNilRand       — RandomCell called without a random source.
//   - ErrWrongState    — BeginCarve called on a grid in a different state.
package grid
