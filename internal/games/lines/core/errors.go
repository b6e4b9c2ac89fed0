package core

import "errors"

var (
	// ErrOutOfRange is returned by mutators given a coordinate outside the board.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidSize is returned when a board is created with a non-positive size.
	ErrInvalidSize = errors.New("invalid board size")

	// ErrInvalidColor is returned when placing a color outside the palette.
	ErrInvalidColor = errors.New("invalid ball color")

	// ErrNegativeScore is returned when committing a negative score delta.
	ErrNegativeScore = errors.New("score delta must not be negative")

	// ErrBoardFull is returned by TryPick when no cell is empty.
	ErrBoardFull = errors.New("board is full")

	// ErrBadRandom is returned by TryPick when the random source returns a
	// value outside the requested range.
	ErrBadRandom = errors.New("random source out of range")

	// ErrMalformedData is returned when encoded state cannot be decoded.
	ErrMalformedData = errors.New("malformed board data")
)
