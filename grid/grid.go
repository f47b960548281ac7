package grid

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Grid owns a rows × columns lattice of Cells in a flat row-major arena.
// Dimensions and adjacency are immutable after construction; the cell count
// never changes. A Grid is not safe for concurrent mutation: exactly one
// generation pass owns it at a time, and callers serialize any sharing.
type Grid struct {
	rows, cols int
	state      State
	cells      []Cell
}

// NewClosed builds a grid with every wall up: all cells allocated, all
// adjacency wired, zero links. This is the starting state for carvers that
// open passages (binary tree, Aldous-Broder, backtracker, Wilson, Kruskal).
// Returns ErrBadDimensions when rows < 1 or cols < 1.
func NewClosed(rows, cols int) (*Grid, error) {
	return newGrid(rows, cols, StateClosed)
}

// NewOpen builds a grid with no walls: every physically-adjacent pair of
// cells is pre-linked. This is the starting state for carvers that cut
// walls into open space (recursive division). Returns ErrBadDimensions when
// rows < 1 or cols < 1.
func NewOpen(rows, cols int) (*Grid, error) {
	g, err := newGrid(rows, cols, StateOpen)
	if err != nil {
		return nil, err
	}

	// Linking east and south once per cell covers every adjacent pair.
	g.EachCell(func(c *Cell) {
		if e := c.East(); e != nil {
			c.Link(e)
		}
		if s := c.South(); s != nil {
			c.Link(s)
		}
	})

	return g, nil
}

// newGrid allocates the arena and wires each cell's neighbor table.
func newGrid(rows, cols int, state State) (*Grid, error) {
	// 1. Validate dimensions.
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}

	// 2. Allocate the arena in one piece; interior pointers stay valid
	//    because the slice never grows.
	g := &Grid{
		rows:  rows,
		cols:  cols,
		state: state,
		cells: make([]Cell, rows*cols),
	}

	// 3. Initialize every cell and resolve its four neighbor indices.
	var (
		idx, nRow, nCol, dRow, dCol int
		c                           *Cell
	)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx = g.index(row, col)
			c = &g.cells[idx]
			c.grid = g
			c.index = idx
			c.row = row
			c.col = col
			c.links = mapset.New[int]()
			for _, d := range Directions() {
				dRow, dCol = d.Delta()
				nRow, nCol = row+dRow, col+dCol
				if g.inBounds(nRow, nCol) {
					c.neighbors[d] = g.index(nRow, nCol)
				} else {
					c.neighbors[d] = noNeighbor
				}
			}
		}
	}

	return g, nil
}

// index maps (row, col) to the arena position, row-major.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// inBounds reports whether (row, col) lies inside the lattice.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Size returns the total cell count, rows*columns.
func (g *Grid) Size() int { return len(g.cells) }

// State returns the grid's lifecycle state.
func (g *Grid) State() State { return g.state }

// BeginCarve checks that the grid is in the state a generation pass
// requires and, on success, moves it to StateCarved so a second pass is
// rejected. It returns ErrWrongState (without mutating anything) when the
// current state differs from required.
func (g *Grid) BeginCarve(required State) error {
	if g.state != required {
		return ErrWrongState
	}
	g.state = StateCarved

	return nil
}

// At returns the cell at (row, col), or nil when the coordinates are out of
// range. Out-of-range access is an expected, harmless query, never a
// failure.
func (g *Grid) At(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}

	return &g.cells[g.index(row, col)]
}

// EachCell calls fn for every cell in row-major order. Every call starts a
// fresh traversal.
func (g *Grid) EachCell(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// DeadEnds returns the cells with exactly one link, in row-major order.
// On a spanning-tree maze these are the corridor endpoints that feature
// placement targets.
func (g *Grid) DeadEnds() []*Cell {
	var out []*Cell
	for i := range g.cells {
		if g.cells[i].linkCount() == 1 {
			out = append(out, &g.cells[i])
		}
	}

	return out
}

// RandomCell returns a uniformly random cell drawn from rng. The source is
// always injected; this package never reads global random state. Returns
// ErrNilRand when rng is nil.
func (g *Grid) RandomCell(rng *rand.Rand) (*Cell, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	return &g.cells[rng.Intn(len(g.cells))], nil
}
