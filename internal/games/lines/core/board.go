package core

import "fmt"

// Board is the N×N grid together with the running score and an index of
// empty cells. Cells are stored in row-major order: index = y*size + x.
//
// Every write goes through Set, which keeps the empty-cell index in step
// with the grid. The index is rebuilt from scratch only by NewBoard and Clear.
type Board struct {
	size  int
	cells []Cell
	score int

	empty []Coord // empty-cell index; order drives random selection
	slot  []int   // slot[i] is the position of cell i in empty, or -1
}

// NewBoard creates a board of the given size with every cell empty.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
		slot:  make([]int, size*size),
	}
	b.Clear()
	return b, nil
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.size + c.X
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Score returns the running score.
func (b *Board) Score() int {
	return b.score
}

// InBounds returns true if the coordinate is on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// Get returns the cell at the given coordinate.
// Out-of-range coordinates read as empty so callers can probe freely.
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return Empty()
	}
	return b.cells[b.index(c)]
}

// IsEmpty reports whether the cell at c is empty (or off the board).
func (b *Board) IsEmpty(c Coord) bool {
	return !b.Get(c).Filled
}

// Set writes a cell and updates the empty-cell index.
func (b *Board) Set(c Coord, cell Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfRange, c, b.size, b.size)
	}
	if cell.Filled && !cell.Color.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidColor, cell.Color)
	}
	if !cell.Filled {
		cell = Empty()
	}

	i := b.index(c)
	prev := b.cells[i]
	switch {
	case !prev.Filled && cell.Filled:
		b.removeEmpty(i)
	case prev.Filled && !cell.Filled:
		b.addEmpty(i, c)
	}
	b.cells[i] = cell
	return nil
}

// removeEmpty drops cell i from the index by swapping in the last entry.
func (b *Board) removeEmpty(i int) {
	pos := b.slot[i]
	if pos < 0 {
		return
	}
	last := len(b.empty) - 1
	moved := b.empty[last]
	b.empty[pos] = moved
	b.slot[b.index(moved)] = pos
	b.empty = b.empty[:last]
	b.slot[i] = -1
}

// addEmpty appends cell i to the index unless it is already present.
func (b *Board) addEmpty(i int, c Coord) {
	if b.slot[i] >= 0 {
		return
	}
	b.slot[i] = len(b.empty)
	b.empty = append(b.empty, c)
}

// Clear empties every cell, rebuilds the index and resets the score.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty()
	}
	b.empty = b.empty[:0]
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			c := C(x, y)
			b.slot[b.index(c)] = len(b.empty)
			b.empty = append(b.empty, c)
		}
	}
	b.score = 0
}

// Clone returns a deep, independent copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		size:  b.size,
		cells: make([]Cell, len(b.cells)),
		score: b.score,
		empty: make([]Coord, len(b.empty)),
		slot:  make([]int, len(b.slot)),
	}
	copy(clone.cells, b.cells)
	copy(clone.empty, b.empty)
	copy(clone.slot, b.slot)
	return clone
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.empty)
}

// IsFull returns true if no cell is empty.
func (b *Board) IsFull() bool {
	return len(b.empty) == 0
}

// EmptyCells returns a copy of the empty-cell index.
func (b *Board) EmptyCells() []Coord {
	out := make([]Coord, len(b.empty))
	copy(out, b.empty)
	return out
}

// AddScore commits a score delta to the running total, which saturates
// at math.MaxInt.
func (b *Board) AddScore(delta int) error {
	if delta < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, delta)
	}
	b.score = addScore(b.score, delta)
	return nil
}

// Equal returns true if two boards have the same size, score and cells.
// The order of the empty-cell index is not compared.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size || b.score != other.score {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// PlaceAndScore occupies c with color and evaluates lines through it.
// Cleared runs are removed from the board, but the score delta is only
// reported; the caller decides whether to commit it with AddScore.
func (b *Board) PlaceAndScore(c Coord, color Color) (LineResult, error) {
	if !color.Valid() {
		return LineResult{}, fmt.Errorf("%w: %d", ErrInvalidColor, color)
	}
	if err := b.Set(c, Occupied(color)); err != nil {
		return LineResult{}, err
	}
	return b.Evaluate(c), nil
}

// PlaceAndCommit behaves like PlaceAndScore and also adds the delta to
// the running score.
func (b *Board) PlaceAndCommit(c Coord, color Color) (LineResult, error) {
	res, err := b.PlaceAndScore(c, color)
	if err != nil {
		return res, err
	}
	b.score = addScore(b.score, res.Score)
	return res, nil
}
