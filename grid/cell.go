package grid

import "github.com/zyedidia/generic/mapset"

// noNeighbor marks an absent entry in a cell's neighbor table.
const noNeighbor = -1

// Cell is one node of the lattice. Its coordinates and physical adjacency
// are fixed when the owning Grid is built; the link set and the tile marker
// are the only mutable parts. Cells are always created by a Grid constructor
// and handed out as pointers into the grid's arena; a zero-value Cell is
// inert (every method treats it as having no grid, no neighbors, no links).
type Cell struct {
	grid      *Grid               // owner; nil only for zero-value cells
	index     int                 // position in the owner's arena
	row, col  int                 // lattice coordinates
	neighbors [directionCount]int // arena indices by Direction, noNeighbor if absent
	links     mapset.Set[int]     // arena indices of passable neighbors
	tile      rune                // opaque marker, never interpreted here
}

// Row returns the cell's row (0 = northern edge).
func (c *Cell) Row() int { return c.row }

// Column returns the cell's column (0 = western edge).
func (c *Cell) Column() int { return c.col }

// Index returns the cell's position in the owning grid's row-major arena,
// row*columns + column.
func (c *Cell) Index() int { return c.index }

// Grid returns the grid that owns the cell, nil for a zero-value Cell.
func (c *Cell) Grid() *Grid { return c.grid }

// Tile returns the opaque tile marker, 0 if never set.
func (c *Cell) Tile() rune { return c.tile }

// SetTile stores an opaque tile marker on the cell. The marker carries no
// meaning inside this module; collaborators write and read it freely.
func (c *Cell) SetTile(t rune) { c.tile = t }

// Neighbor returns the physically adjacent cell in direction d, or nil when
// the cell sits on the corresponding edge of the grid.
func (c *Cell) Neighbor(d Direction) *Cell {
	if c.grid == nil || !d.IsValid() {
		return nil
	}
	idx := c.neighbors[d]
	if idx == noNeighbor {
		return nil
	}

	return &c.grid.cells[idx]
}

// North returns the neighbor one row up, or nil on the northern edge.
func (c *Cell) North() *Cell { return c.Neighbor(North) }

// South returns the neighbor one row down, or nil on the southern edge.
func (c *Cell) South() *Cell { return c.Neighbor(South) }

// East returns the neighbor one column right, or nil on the eastern edge.
func (c *Cell) East() *Cell { return c.Neighbor(East) }

// West returns the neighbor one column left, or nil on the western edge.
func (c *Cell) West() *Cell { return c.Neighbor(West) }

// Neighbors returns the physically adjacent cells that exist, in canonical
// direction order, irrespective of link state. Generation algorithms use
// this to pick candidate cells to open.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, 0, directionCount)
	var n *Cell
	for _, d := range Directions() {
		if n = c.Neighbor(d); n != nil {
			out = append(out, n)
		}
	}

	return out
}

// adjacent reports whether other is one of the receiver's physical
// neighbors. Cells from another grid (or nil) are never adjacent.
func (c *Cell) adjacent(other *Cell) bool {
	if other == nil || c.grid == nil || other.grid != c.grid {
		return false
	}
	for _, idx := range c.neighbors {
		if idx != noNeighbor && idx == other.index {
			return true
		}
	}

	return false
}

// Link marks the passage between the receiver and other as open, on both
// cells (links are always symmetric). Linking toward nil, toward a cell of
// another grid, or toward a cell that is not a physical neighbor is a no-op,
// not an error: absent neighbors simply cannot be opened.
func (c *Cell) Link(other *Cell) {
	if !c.adjacent(other) {
		return
	}
	c.links.Put(other.index)
	other.links.Put(c.index)
}

// Unlink closes the passage between the receiver and other, on both cells.
// Same no-op rules as Link.
func (c *Cell) Unlink(other *Cell) {
	if !c.adjacent(other) {
		return
	}
	c.links.Remove(other.index)
	other.links.Remove(c.index)
}

// Linked reports whether the passage to other is open. Always false for
// nil, foreign or non-adjacent cells.
func (c *Cell) Linked(other *Cell) bool {
	if other == nil || c.grid == nil || other.grid != c.grid {
		return false
	}

	return c.links.Has(other.index)
}

// Links returns the linked neighbors in canonical direction order. The
// slice is freshly allocated; mutating it does not affect the cell.
func (c *Cell) Links() []*Cell {
	out := make([]*Cell, 0, directionCount)
	var n *Cell
	for _, d := range Directions() {
		if n = c.Neighbor(d); n != nil && c.links.Has(n.index) {
			out = append(out, n)
		}
	}

	return out
}

// linkCount is the number of open passages; a dead end has exactly one.
func (c *Cell) linkCount() int {
	if c.grid == nil {
		return 0
	}

	return c.links.Size()
}
