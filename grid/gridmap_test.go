// Package grid_test contains unit tests for the Map container: parsing,
// coordinate round-trips, adjacency clipping, and error cases.
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arreto/adventkit/grid"
)

func TestFromLines_RoundTrip(t *testing.T) {
	m, err := grid.FromLines([]string{"ab", "cd", "ef"}, func(r rune) (rune, error) { return r, nil })
	require.NoError(t, err)
	require.Equal(t, 2, m.Width())
	require.Equal(t, 3, m.Height())
	require.Equal(t, 6, m.Len())

	p, err := m.PosAt(1, 2)
	require.NoError(t, err)
	require.Equal(t, 'f', m.At(p))

	x, y := m.XY(p)
	require.Equal(t, 1, x)
	require.Equal(t, 2, y)
	require.Equal(t, 5, p.Flat())
}

func TestFromLines_Errors(t *testing.T) {
	identity := func(r rune) (rune, error) { return r, nil }

	_, err := grid.FromLines(nil, identity)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromLines([]string{""}, identity)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.FromLines([]string{"abc", "ab"}, identity)
	require.ErrorIs(t, err, grid.ErrInconsistentLineSize)
}

func TestDigits(t *testing.T) {
	m, err := grid.Digits([]string{"19", "05"})
	require.NoError(t, err)
	p, err := m.PosAt(1, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(9), m.At(p))

	_, err = grid.Digits([]string{"1x"})
	require.ErrorIs(t, err, grid.ErrNotADigit)
}

func TestPosAt_OutOfBounds(t *testing.T) {
	m, err := grid.New[int](3, 3)
	require.NoError(t, err)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := m.PosAt(xy[0], xy[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds, "coords %v", xy)
	}
}

func TestNew_Empty(t *testing.T) {
	_, err := grid.New[int](0, 5)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New[int](5, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestSet(t *testing.T) {
	m, err := grid.New[int](2, 2)
	require.NoError(t, err)
	p, err := m.PosAt(1, 1)
	require.NoError(t, err)
	m.Set(p, 42)
	require.Equal(t, 42, m.At(p))
}

func TestAdjacent_Clipping(t *testing.T) {
	m, err := grid.New[int](3, 3)
	require.NoError(t, err)

	center, err := m.PosAt(1, 1)
	require.NoError(t, err)
	corner, err := m.PosAt(0, 0)
	require.NoError(t, err)

	// Interior cell: full neighbor counts per mode.
	require.Len(t, m.Adjacent(center, grid.Rook), 4)
	require.Len(t, m.Adjacent(center, grid.Queen), 8)
	require.Len(t, m.Adjacent(center, grid.Region3x3), 9)

	// Corner cell: clipped.
	require.Len(t, m.Adjacent(corner, grid.Rook), 2)
	require.Len(t, m.Adjacent(corner, grid.Queen), 3)
	require.Len(t, m.Adjacent(corner, grid.Region3x3), 4)
}

func TestAdjacent_Region3x3IncludesSelf(t *testing.T) {
	m, err := grid.New[int](3, 3)
	require.NoError(t, err)
	center, err := m.PosAt(1, 1)
	require.NoError(t, err)
	require.Contains(t, m.Adjacent(center, grid.Region3x3), center)
	require.NotContains(t, m.Adjacent(center, grid.Queen), center)
}

func TestManhattan(t *testing.T) {
	m, err := grid.New[int](10, 10)
	require.NoError(t, err)
	a, err := m.PosAt(1, 2)
	require.NoError(t, err)
	b, err := m.PosAt(4, 9)
	require.NoError(t, err)
	require.Equal(t, uint64(10), m.Manhattan(a, b))
	require.Equal(t, uint64(10), m.Manhattan(b, a))
	require.Zero(t, m.Manhattan(a, a))
}

func TestPositions_RowMajor(t *testing.T) {
	m, err := grid.New[int](2, 2)
	require.NoError(t, err)
	all := m.Positions()
	require.Len(t, all, 4)
	for i, p := range all {
		require.Equal(t, i, p.Flat())
	}
}
