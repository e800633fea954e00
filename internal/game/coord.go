package game

import "fmt"

// BoardSize is the width and height of the grid, border included.
const BoardSize = 10

// Coord is a (row, column) position on the grid. Row 0 is the bottom edge and
// row BoardSize-1 the top edge.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate as "(row,col)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c moved one cell in direction d.
func (c Coord) Add(d Direction) Coord {
	dr, dc := d.delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is the sense of travel of a ray.
type Direction int

const (
	Up    Direction = iota // towards higher rows
	Down                   // towards lower rows
	Left                   // towards lower columns
	Right                  // towards higher columns
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func (d Direction) delta() (int, int) {
	switch d {
	case Up:
		return 1, 0
	case Down:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
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

// sides returns the two directions perpendicular to d. The first is the
// counter-clockwise side, the second the clockwise side.
func (d Direction) sides() (Direction, Direction) {
	switch d {
	case Up:
		return Left, Right
	case Down:
		return Right, Left
	case Left:
		return Down, Up
	default:
		return Up, Down
	}
}
