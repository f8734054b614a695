// Package grid defines positions, adjacency modes, and sentinel errors
// for the 2D map container.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: map must have at least one row and one column")
	// ErrInconsistentLineSize indicates input rows of differing lengths.
	ErrInconsistentLineSize = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates coordinates outside the map.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNotADigit indicates a rune outside '0'..'9' in a digit grid.
	ErrNotADigit = errors.New("grid: cell is not a decimal digit")
)

// Pos is an opaque flat index into a Map. The zero Pos names the top-left
// cell. Pos values are only meaningful against the Map that produced them;
// mixing maps of different widths silently names the wrong cell.
type Pos struct {
	index int
}

// Flat returns the raw row-major index.
func (p Pos) Flat() int { return p.index }

// Adjacency selects which neighbors Adjacent enumerates.
type Adjacency int

const (
	// Rook yields the 4 orthogonal neighbors.
	Rook Adjacency = iota
	// Queen yields the 8 orthogonal and diagonal neighbors.
	Queen
	// Region3x3 yields the full 3×3 block, including the cell itself.
	Region3x3
)

// offsets returns the (dx, dy) deltas for the adjacency mode, in a stable
// order so neighbor enumeration is deterministic.
func (a Adjacency) offsets() [][2]int {
	switch a {
	case Queen:
		return [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	case Region3x3:
		return [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {0, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	default:
		return [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	}
}
