package carve_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedalia/mazegrid/carve"
	"github.com/daedalia/mazegrid/distances"
	"github.com/daedalia/mazegrid/grid"
)

// treeMethods are the strategies that grow a spanning tree from scratch,
// as opposed to Braid which reworks an existing maze.
var treeMethods = []string{
	carve.MethodBinaryTree,
	carve.MethodAldousBroder,
	carve.MethodBacktracker,
	carve.MethodDivision,
	carve.MethodWilson,
	carve.MethodKruskal,
}

// freshFor builds a grid in the given state: open and closed directly,
// carved by running the backtracker over a closed grid.
func freshFor(t *testing.T, state grid.State, rows, cols int) *grid.Grid {
	t.Helper()
	switch state {
	case grid.StateOpen:
		g, err := grid.NewOpen(rows, cols)
		require.NoError(t, err)
		return g
	case grid.StateCarved:
		g, err := grid.NewClosed(rows, cols)
		require.NoError(t, err)
		_, err = carve.Backtracker{}.Apply(g, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		return g
	default:
		g, err := grid.NewClosed(rows, cols)
		require.NoError(t, err)
		return g
	}
}

// requiredState mirrors each method's declared input state.
func requiredState(method string) grid.State {
	switch method {
	case carve.MethodDivision:
		return grid.StateOpen
	case carve.MethodBraid:
		return grid.StateCarved
	default:
		return grid.StateClosed
	}
}

// linkSignature flattens the maze's passages into a comparable string.
// Cells are walked row-major and neighbors in fixed direction order, so
// equal mazes produce equal signatures.
func linkSignature(g *grid.Grid) string {
	var sb strings.Builder
	g.EachCell(func(c *grid.Cell) {
		for _, n := range c.Neighbors() {
			if c.Linked(n) {
				fmt.Fprintf(&sb, "%d-%d;", c.Index(), n.Index())
			}
		}
	})

	return sb.String()
}

// countLinks counts undirected passages.
func countLinks(g *grid.Grid) int {
	total := 0
	g.EachCell(func(c *grid.Cell) { total += len(c.Links()) })

	return total / 2
}

// TestCarve_SpanningTree drives every tree strategy over a 6x9 grid and
// checks the three structural guarantees shared by the family: the whole
// grid is reachable, the passage count is exactly cells-1, and every
// passage is symmetric.
func TestCarve_SpanningTree(t *testing.T) {
	for _, method := range treeMethods {
		t.Run(method, func(t *testing.T) {
			g := freshFor(t, requiredState(method), 6, 9)
			rng := rand.New(rand.NewSource(42))

			out, err := carve.Carve(g, rng, carve.WithMethod(method))
			require.NoError(t, err)
			assert.Same(t, g, out, "Carve must return its input grid")
			assert.Equal(t, grid.StateCarved, g.State())
			assert.Equal(t, 6, g.Rows(), "carving never reshapes the grid")
			assert.Equal(t, 9, g.Columns())
			assert.Equal(t, 54, g.Size())

			d, err := distances.Compute(g, g.At(0, 0))
			require.NoError(t, err)
			assert.Len(t, d.Order, g.Size(), "every cell must be reachable")

			assert.Equal(t, g.Size()-1, countLinks(g), "a spanning tree has cells-1 passages")

			g.EachCell(func(c *grid.Cell) {
				for _, n := range c.Neighbors() {
					if c.Linked(n) {
						assert.True(t, n.Linked(c), "passage %d-%d must be symmetric", c.Index(), n.Index())
					}
				}
			})
		})
	}
}

// TestCarve_SingleCell checks the degenerate 1x1 grid: nothing to link,
// nothing to walk, still a valid carved result.
func TestCarve_SingleCell(t *testing.T) {
	for _, method := range treeMethods {
		t.Run(method, func(t *testing.T) {
			g := freshFor(t, requiredState(method), 1, 1)

			_, err := carve.Carve(g, rand.New(rand.NewSource(1)), carve.WithMethod(method))
			require.NoError(t, err)
			assert.Equal(t, grid.StateCarved, g.State())
			assert.Zero(t, countLinks(g))
		})
	}
}

// TestCarve_Determinism reruns every strategy with an identical seed and
// expects identical mazes. Braid joins through a fixed pre-carved input.
func TestCarve_Determinism(t *testing.T) {
	for _, method := range treeMethods {
		t.Run(method, func(t *testing.T) {
			build := func(seed int64) string {
				g := freshFor(t, requiredState(method), 8, 8)
				_, err := carve.Carve(g, rand.New(rand.NewSource(seed)), carve.WithMethod(method))
				require.NoError(t, err)
				return linkSignature(g)
			}

			assert.Equal(t, build(7), build(7), "same seed must reproduce the maze")
		})
	}

	t.Run(carve.MethodBraid, func(t *testing.T) {
		build := func(seed int64) string {
			g := freshFor(t, grid.StateCarved, 8, 8)
			_, err := carve.Carve(g, rand.New(rand.NewSource(seed)),
				carve.WithMethod(carve.MethodBraid),
				carve.WithBraidProbability(0.5))
			require.NoError(t, err)
			return linkSignature(g)
		}

		assert.Equal(t, build(7), build(7), "same seed must reproduce the braid")
	})
}

// TestCarve_SeedMatters carves a 16x16 grid with two different seeds; a
// strategy that ignored its RNG would pass the determinism test above and
// fail here.
func TestCarve_SeedMatters(t *testing.T) {
	build := func(seed int64) string {
		g := freshFor(t, grid.StateClosed, 16, 16)
		_, err := carve.Carve(g, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		return linkSignature(g)
	}

	assert.NotEqual(t, build(1), build(2), "different seeds should not reproduce the maze")
}

// TestCarve_WrongState feeds each strategy a grid in a state it does not
// accept and expects a clean refusal: grid.ErrWrongState in the wrap
// chain, links and state untouched.
func TestCarve_WrongState(t *testing.T) {
	cases := []struct {
		method string
		state  grid.State
	}{
		{carve.MethodBinaryTree, grid.StateOpen},
		{carve.MethodAldousBroder, grid.StateOpen},
		{carve.MethodBacktracker, grid.StateOpen},
		{carve.MethodWilson, grid.StateCarved},
		{carve.MethodKruskal, grid.StateOpen},
		{carve.MethodDivision, grid.StateClosed},
		{carve.MethodBraid, grid.StateClosed},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			g := freshFor(t, tc.state, 4, 4)
			before := linkSignature(g)

			_, err := carve.Carve(g, rand.New(rand.NewSource(5)), carve.WithMethod(tc.method))
			require.Error(t, err)
			assert.ErrorIs(t, err, grid.ErrWrongState)
			assert.Contains(t, err.Error(), tc.method, "error must name the refusing method")
			assert.Equal(t, tc.state, g.State(), "failed carve must not advance the state")
			assert.Equal(t, before, linkSignature(g), "failed carve must not touch links")
		})
	}
}

// TestCarve_Reapply carves a grid, then asks for a second pass; the carved
// state is terminal for tree strategies, so the rerun must refuse.
func TestCarve_Reapply(t *testing.T) {
	g := freshFor(t, grid.StateClosed, 4, 4)
	rng := rand.New(rand.NewSource(11))

	_, err := carve.Carve(g, rng)
	require.NoError(t, err)
	before := linkSignature(g)

	_, err = carve.Carve(g, rng)
	require.Error(t, err)
	assert.ErrorIs(t, err, grid.ErrWrongState)
	assert.Equal(t, before, linkSignature(g), "refused rerun must not touch the maze")
}

// TestCarve_NilInputs exercises the presence checks of every carver.
func TestCarve_NilInputs(t *testing.T) {
	carvers := []carve.Carver{
		carve.BinaryTree{},
		carve.AldousBroder{},
		carve.Backtracker{},
		carve.Division{},
		carve.Wilson{},
		carve.Kruskal{},
		carve.Braid{P: 1},
	}
	for _, cv := range carvers {
		t.Run(cv.Method(), func(t *testing.T) {
			_, err := cv.Apply(nil, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, carve.ErrGridNil)

			g := freshFor(t, cv.Requires(), 3, 3)
			_, err = cv.Apply(g, nil)
			assert.ErrorIs(t, err, carve.ErrNilRand)
			assert.Equal(t, cv.Requires(), g.State(), "failed carve must not advance the state")
		})
	}
}

// TestCarve_UnknownMethod checks the dispatcher's selection error.
func TestCarve_UnknownMethod(t *testing.T) {
	g := freshFor(t, grid.StateClosed, 3, 3)

	_, err := carve.Carve(g, rand.New(rand.NewSource(1)), carve.WithMethod("voronoi"))
	require.Error(t, err)
	assert.ErrorIs(t, err, carve.ErrUnknownMethod)
	assert.ErrorContains(t, err, `"voronoi"`)
	assert.Equal(t, grid.StateClosed, g.State(), "selection failure must not touch the grid")
}

// TestCarve_DefaultMethod runs the dispatcher bare; the house default is
// the backtracker, so a closed grid must come out carved and connected.
func TestCarve_DefaultMethod(t *testing.T) {
	g := freshFor(t, grid.StateClosed, 5, 5)

	_, err := carve.Carve(g, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, grid.StateCarved, g.State())

	d, err := distances.Compute(g, g.At(0, 0))
	require.NoError(t, err)
	assert.Len(t, d.Order, g.Size())
}
