package carve

import (
	"math/rand"

	"github.com/daedalia/mazegrid/grid"
)

// Division carves in reverse: it starts from a fully linked open grid and
// recursively splits regions with walls, leaving a single passage through
// each new wall. Taller-than-wide regions split horizontally, wider ones
// vertically, and squares flip a coin. Recursion stops at unit strips, so
// each split joins two already spanning subregions through exactly one
// passage and the finished maze is a spanning tree like the additive
// carvers produce.
//
// The texture is distinctive: long straight walls and a boxy feel none of
// the random-walk strategies can make.
type Division struct{}

// Method returns MethodDivision.
func (Division) Method() string { return MethodDivision }

// Requires reports grid.StateOpen.
func (Division) Requires() grid.State { return grid.StateOpen }

// Apply carves g in place and returns it.
func (dv Division) Apply(g *grid.Grid, rng *rand.Rand) (*grid.Grid, error) {
	// 1. Validate input grid, RNG and initial state.
	if err := begin(dv.Method(), dv.Requires(), g, rng); err != nil {
		return nil, err
	}

	// 2. Split the whole grid; recursion depth is O(rows + cols).
	d := &divider{g: g, rng: rng}
	d.divide(0, 0, g.Rows(), g.Columns())

	return g, nil
}

// divider carries the shared state of one Division run.
type divider struct {
	g   *grid.Grid
	rng *rand.Rand
}

// divide splits the height x width region whose northwest corner sits at
// (row, col), then recurses into both halves. Unit-wide and unit-tall
// regions are already corridors and need no walls.
func (d *divider) divide(row, col, height, width int) {
	if height <= 1 || width <= 1 {
		return
	}

	switch {
	case height > width:
		d.divideHorizontally(row, col, height, width)
	case width > height:
		d.divideVertically(row, col, height, width)
	case coin(d.rng):
		d.divideHorizontally(row, col, height, width)
	default:
		d.divideVertically(row, col, height, width)
	}
}

// divideHorizontally erects an east-west wall south of a random row,
// leaving one passage, then recurses into the northern and southern halves.
func (d *divider) divideHorizontally(row, col, height, width int) {
	south := d.rng.Intn(height - 1) // wall sits south of row+south
	passage := d.rng.Intn(width)

	var c *grid.Cell
	for x := 0; x < width; x++ {
		if x == passage {
			continue
		}
		c = d.g.At(row+south, col+x)
		c.Unlink(c.South())
	}

	d.divide(row, col, south+1, width)
	d.divide(row+south+1, col, height-south-1, width)
}

// divideVertically erects a north-south wall east of a random column,
// leaving one passage, then recurses into the western and eastern halves.
func (d *divider) divideVertically(row, col, height, width int) {
	east := d.rng.Intn(width - 1) // wall sits east of col+east
	passage := d.rng.Intn(height)

	var c *grid.Cell
	for y := 0; y < height; y++ {
		if y == passage {
			continue
		}
		c = d.g.At(row+y, col+east)
		c.Unlink(c.East())
	}

	d.divide(row, col, height, east+1)
	d.divide(row, col+east+1, height, width-east-1)
}
