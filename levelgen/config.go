package levelgen

import "github.com/daedalia/mazegrid/carve"

// Tile markers Generate writes onto the grid. The core grid package
// stores tiles without interpreting them; the vocabulary lives here.
const (
	TileEntrance = '<'
	TileStairs   = '>'
	TileFeature  = '*'
)

// DefaultSeed replaces a zero Config.Seed, so the zero value of Config
// generates a level instead of failing.
const DefaultSeed int64 = 1

// Config describes one level request.
type Config struct {
	// Rows and Cols give the lattice shape. Both must be positive.
	Rows, Cols int

	// Method names the carving strategy by carve registry constant.
	// Empty selects carve.MethodBacktracker.
	Method string

	// Seed feeds the single RNG of the run; equal configs reproduce
	// equal levels. Zero selects DefaultSeed.
	Seed int64

	// BraidP, when positive, runs a braid pass at that probability after
	// carving. The maze gains loops and loses the perfect-maze
	// guarantee, which changes how the route endpoints are chosen.
	BraidP float64
}

// withDefaults resolves the zero-value conveniences.
func (cfg Config) withDefaults() Config {
	if cfg.Method == "" {
		cfg.Method = carve.MethodBacktracker
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}

	return cfg
}
