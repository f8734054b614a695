// Package grid implements the Map container.
package grid

import "fmt"

// Map is a rectangular grid of T backed by a single row-major slice.
// It is cheap to index, iterate, and copy-construct; cells are addressed
// by Pos (flat index) or by (x, y).
type Map[T any] struct {
	width  int
	height int
	cells  []T
}

// New returns a width×height Map with zero-valued cells.
func New[T any](width, height int) (*Map[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Map[T]{width: width, height: height, cells: make([]T, width*height)}, nil
}

// FromLines builds a Map from text lines, one cell per rune, using parse
// to convert each rune. All lines must have equal length.
func FromLines[T any](lines []string, parse func(r rune) (T, error)) (*Map[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len([]rune(lines[0]))
	m := &Map[T]{width: width, height: len(lines), cells: make([]T, 0, width*len(lines))}
	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrInconsistentLineSize, y, len(runes), width)
		}
		for x, r := range runes {
			value, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %w", x, y, err)
			}
			m.cells = append(m.cells, value)
		}
	}

	return m, nil
}

// Digits builds a Map[uint64] from lines of decimal digits — the common
// puzzle cost-grid input shape.
func Digits(lines []string) (*Map[uint64], error) {
	return FromLines(lines, func(r rune) (uint64, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotADigit, r)
		}

		return uint64(r - '0'), nil
	})
}

// Width returns the number of columns.
func (m *Map[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map[T]) Height() int { return m.height }

// Len returns the total number of cells.
func (m *Map[T]) Len() int { return len(m.cells) }

// At returns the value stored at p. p must come from this Map.
func (m *Map[T]) At(p Pos) T { return m.cells[p.index] }

// Set stores value at p.
func (m *Map[T]) Set(p Pos, value T) { m.cells[p.index] = value }

// PosAt converts (x, y) coordinates into a Pos, rejecting coordinates
// outside the map.
func (m *Map[T]) PosAt(x, y int) (Pos, error) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Pos{}, fmt.Errorf("%w: (%d,%d) on %dx%d map", ErrOutOfBounds, x, y, m.width, m.height)
	}

	return Pos{index: y*m.width + x}, nil
}

// XY converts a Pos back into (x, y) coordinates.
func (m *Map[T]) XY(p Pos) (x, y int) {
	return p.index % m.width, p.index / m.width
}

// Positions returns every Pos in row-major order.
func (m *Map[T]) Positions() []Pos {
	all := make([]Pos, len(m.cells))
	for i := range all {
		all[i] = Pos{index: i}
	}

	return all
}

// Adjacent returns the in-bounds neighbors of p under the given adjacency,
// in the mode's stable offset order. Edge and corner cells yield fewer
// positions.
func (m *Map[T]) Adjacent(p Pos, adj Adjacency) []Pos {
	x, y := m.XY(p)
	offsets := adj.offsets()
	neighbors := make([]Pos, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
			continue
		}
		neighbors = append(neighbors, Pos{index: ny*m.width + nx})
	}

	return neighbors
}

// Manhattan returns the L1 distance between two positions.
func (m *Map[T]) Manhattan(a, b Pos) uint64 {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)

	return uint64(intAbs(ax-bx) + intAbs(ay-by))
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
