package carve_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalia/mazegrid/carve"
	"github.com/daedalia/mazegrid/grid"
)

// TestDivision_UnitStripUntouched: a 1xN region is already a corridor, so
// recursion bottoms out immediately and no wall is built.
func TestDivision_UnitStripUntouched(t *testing.T) {
	for _, dims := range [][2]int{{1, 5}, {5, 1}} {
		g := freshFor(t, grid.StateOpen, dims[0], dims[1])
		before := linkSignature(g)

		_, err := carve.Division{}.Apply(g, rand.New(rand.NewSource(6)))
		require.NoError(t, err)

		assert.Equal(t, before, linkSignature(g), "%dx%d strip must keep every passage", dims[0], dims[1])
		assert.Equal(t, grid.StateCarved, g.State())
	}
}

// TestDivision_SquareRegions drives the tie-breaking path with a square
// grid; the result must still be a spanning tree, meaning each recursive
// wall kept exactly one passage. The finished 8x8 holds both walls and
// passages and keeps its shape.
func TestDivision_SquareRegions(t *testing.T) {
	g := freshFor(t, grid.StateOpen, 8, 8)

	_, err := carve.Division{}.Apply(g, rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	assert.Equal(t, g.Size()-1, countLinks(g), "every split must keep exactly one passage")
	assert.Equal(t, 8, g.Rows())
	assert.Equal(t, 8, g.Columns())

	// 112 adjacent pairs on an 8x8; 63 passages means walls exist too.
	var walls, passages int
	g.EachCell(func(c *grid.Cell) {
		for _, n := range c.Neighbors() {
			if c.Linked(n) {
				passages++
			} else {
				walls++
			}
		}
	})
	assert.Positive(t, walls, "division must build walls")
	assert.Positive(t, passages, "division must keep passages")
}

// TestDivision_BuildsWalls confirms the strategy actually removes links on
// any divisible grid: an open 4x4 starts with 24 passages and must come
// down to 15.
func TestDivision_BuildsWalls(t *testing.T) {
	g := freshFor(t, grid.StateOpen, 4, 4)
	require.Equal(t, 24, countLinks(g), "open 4x4 baseline")

	_, err := carve.Division{}.Apply(g, rand.New(rand.NewSource(17)))
	require.NoError(t, err)

	assert.Equal(t, 15, countLinks(g))
}
