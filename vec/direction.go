// Package vec: cardinal directions on a text grid.
package vec

// Direction is one of the four cardinal directions. The grid convention
// puts (0,0) top-left with y growing downward, so Up is (0,-1).
type Direction int

const (
	// Up points toward smaller y.
	Up Direction = iota
	// Down points toward larger y.
	Down
	// Left points toward smaller x.
	Left
	// Right points toward larger x.
	Right
)

// Cardinal returns the four directions in declaration order.
func Cardinal() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Vec returns the unit step for the direction.
func (d Direction) Vec() V2[int] {
	switch d {
	case Up:
		return V2[int]{0, -1}
	case Down:
		return V2[int]{0, 1}
	case Left:
		return V2[int]{-1, 0}
	default:
		return V2[int]{1, 0}
	}
}

// TurnRight rotates the direction 90° clockwise (screen orientation).
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	default:
		return Up
	}
}

// TurnLeft rotates the direction 90° counterclockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	default:
		return Up
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}
