package core

import "fmt"

// Coord represents a 2D coordinate on the board.
// X increases to the right, Y increases downward.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// neighbors4 lists orthogonal steps in path search order: up, down, left, right.
var neighbors4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
