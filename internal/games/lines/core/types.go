// Package core implements the board engine for the color lines puzzle:
// the grid with its empty-cell index, path search, line scoring,
// random ball allocation and the canonical text encoding.
//
// The package is UI-agnostic, does no I/O and is not safe for concurrent
// mutation. Callers sharing a Board between goroutines must serialize access.
package core

// Cell represents a single cell in the grid.
type Cell struct {
	Filled bool  // Whether the cell holds a ball
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a filled cell with the given color.
func Occupied(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Char returns the encoded character for the cell.
func (c Cell) Char() byte {
	if !c.Filled {
		return EmptyChar
	}
	return c.Color.Char()
}

// CellFromChar decodes a cell character. '0' is an empty cell.
func CellFromChar(ch byte) (Cell, bool) {
	if ch == EmptyChar {
		return Empty(), true
	}
	color, ok := ColorFromChar(ch)
	if !ok {
		return Empty(), false
	}
	return Occupied(color), true
}

// Ball is a pending placement: a color bound to a coordinate.
type Ball struct {
	At    Coord `json:"at"`
	Color Color `json:"color"`
}

// Axis identifies one of the four line directions checked by the scorer.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisDiagonalDown // ↘
	AxisDiagonalUp   // ↗
)

// axes lists scan order; the first strictly-longest axis wins ties.
var axes = [...]Axis{AxisHorizontal, AxisVertical, AxisDiagonalDown, AxisDiagonalUp}

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisDiagonalDown:
		return "diagonal-down"
	case AxisDiagonalUp:
		return "diagonal-up"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Delta returns the (dx, dy) step along this axis.
func (a Axis) Delta() (dx, dy int) {
	switch a {
	case AxisHorizontal:
		return 1, 0
	case AxisVertical:
		return 0, 1
	case AxisDiagonalDown:
		return 1, 1
	case AxisDiagonalUp:
		return 1, -1
	default:
		return 0, 0
	}
}
