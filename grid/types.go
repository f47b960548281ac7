// Package grid defines directions, lifecycle states and sentinel errors
// shared by the lattice types.
package grid

import "errors"

// Sentinel errors for grid construction and use.
var (
	// ErrBadDimensions is returned by NewClosed/NewOpen when rows or columns
	// is smaller than 1. Check with errors.Is.
	ErrBadDimensions = errors.New("grid: rows and columns must be positive")

	// ErrNilRand is returned by RandomCell when no random source is supplied.
	ErrNilRand = errors.New("grid: rng is required")

	// ErrWrongState is returned by BeginCarve when the grid is not in the
	// state a generation pass requires (e.g. a wall-adding pass on a grid
	// that is not fully open, or any pass on an already carved grid).
	ErrWrongState = errors.New("grid: grid is not in the required state")
)

// Direction identifies one of the four lattice directions. Row 0 is the
// northern edge, so North decreases the row and East increases the column.
type Direction uint8

// The four directions, in canonical enumeration order. Every place that
// iterates neighbors deterministically uses this order.
const (
	North Direction = iota
	South
	East
	West
)

// directionCount is the number of valid directions; neighbor tables are
// sized by it.
const directionCount = 4

// Directions returns the four directions in canonical order.
func Directions() [directionCount]Direction {
	return [directionCount]Direction{North, South, East, West}
}

// IsValid reports whether d is one of the four declared directions.
func (d Direction) IsValid() bool {
	return d < directionCount
}

// Opposite returns the reverse direction (North↔South, East↔West).
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row/column offset a single step in d applies.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns the lowercase direction name, or "invalid" for values
// outside the enumeration.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "invalid"
	}
}

// State is the lifecycle state of a Grid. Constructors produce StateClosed
// or StateOpen; a successful generation pass moves the grid to StateCarved.
type State uint8

const (
	// StateClosed: all cells allocated and adjacency wired, zero links.
	StateClosed State = iota

	// StateOpen: every physically-adjacent pair of cells is linked.
	StateOpen

	// StateCarved: a generation pass has completed; the link graph is the
	// finished maze.
	StateCarved
)

// String returns a short human-readable state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateCarved:
		return "carved"
	default:
		return "unknown"
	}
}
