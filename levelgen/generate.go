package levelgen

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/daedalia/mazegrid/carve"
	"github.com/daedalia/mazegrid/distances"
	"github.com/daedalia/mazegrid/grid"
)

// Level is one generated floor.
type Level struct {
	// Grid is the carved maze, tiles already written.
	Grid *grid.Grid

	// Entrance and Stairs are the route endpoints, tiled TileEntrance
	// and TileStairs.
	Entrance, Stairs *grid.Cell

	// Features are the dead ends off the main route, tiled TileFeature.
	// Braided levels may have none.
	Features []*grid.Cell

	// Seed is the effective seed after defaulting. Rerunning Generate
	// with it (and the same Config otherwise) reproduces the level.
	Seed int64
}

// Generate builds a complete level from cfg: carve, optionally braid,
// pick the route endpoints, mark the tiles.
//
// On a perfect maze the entrance and stairs span the true longest path.
// A braided maze has no such guarantee, so the endpoints fall back to the
// cell farthest from the northwest corner.
//
// All failures are wrapped pass-throughs: grid.ErrBadDimensions for bad
// shapes, carve.ErrUnknownMethod for bad method names, and so on, each
// reachable with errors.Is.
func Generate(cfg Config) (*Level, error) {
	// 1. Resolve defaults and look the carver up front; its Requires
	//    decides which constructor to use.
	cfg = cfg.withDefaults()
	cv, err := carve.For(cfg.Method)
	if err != nil {
		return nil, fmt.Errorf("levelgen: %w", err)
	}

	// 2. Build the grid in the carver's input state.
	var g *grid.Grid
	if cv.Requires() == grid.StateOpen {
		g, err = grid.NewOpen(cfg.Rows, cfg.Cols)
	} else {
		g, err = grid.NewClosed(cfg.Rows, cfg.Cols)
	}
	if err != nil {
		return nil, fmt.Errorf("levelgen: %w", err)
	}

	// 3. One RNG drives the whole run.
	rng := rand.New(rand.NewSource(cfg.Seed))
	if _, err = cv.Apply(g, rng); err != nil {
		return nil, fmt.Errorf("levelgen: %w", err)
	}

	// 4. Optional braid pass, same RNG.
	braided := cfg.BraidP > 0
	if braided {
		if _, err = (carve.Braid{P: cfg.BraidP}).Apply(g, rng); err != nil {
			return nil, fmt.Errorf("levelgen: %w", err)
		}
	}

	// 5. Route: longest path on trees, farthest-from-origin otherwise.
	var route []*grid.Cell
	if braided {
		d, derr := distances.Compute(g, g.At(0, 0))
		if derr != nil {
			return nil, fmt.Errorf("levelgen: %w", derr)
		}
		far, _ := d.Farthest()
		route, err = d.PathTo(far)
	} else {
		route, err = distances.LongestPath(g)
	}
	if err != nil {
		return nil, fmt.Errorf("levelgen: %w", err)
	}
	entrance, stairs := route[0], route[len(route)-1]

	// 6. Features are dead ends off the route.
	onRoute := mapset.New[*grid.Cell]()
	for _, c := range route {
		onRoute.Put(c)
	}
	var features []*grid.Cell
	for _, c := range g.DeadEnds() {
		if onRoute.Has(c) {
			continue
		}
		c.SetTile(TileFeature)
		features = append(features, c)
	}
	entrance.SetTile(TileEntrance)
	stairs.SetTile(TileStairs)

	return &Level{
		Grid:     g,
		Entrance: entrance,
		Stairs:   stairs,
		Features: features,
		Seed:     cfg.Seed,
	}, nil
}
