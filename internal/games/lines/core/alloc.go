package core

import "fmt"

// Random is the source of randomness for ball allocation.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Pick draws a ball for a random empty cell without placing it.
// The coordinate is chosen by index into the empty-cell index, then the
// color uniformly from the palette. Returns false when the board is full
// or when rng breaks the Intn contract; TryPick tells the two apart.
func (b *Board) Pick(rng Random) (Ball, bool) {
	ball, err := b.TryPick(rng)
	return ball, err == nil
}

// TryPick is Pick with the reason for a failed draw: ErrBoardFull, or
// ErrBadRandom when rng returns a value outside [0, n).
func (b *Board) TryPick(rng Random) (Ball, error) {
	n := len(b.empty)
	if n == 0 {
		return Ball{}, ErrBoardFull
	}
	i, err := draw(rng, n)
	if err != nil {
		return Ball{}, err
	}
	at := b.empty[i]
	i, err = draw(rng, len(Palette))
	if err != nil {
		return Ball{}, err
	}
	return Ball{At: at, Color: Palette[i]}, nil
}

func draw(rng Random, n int) (int, error) {
	i := rng.Intn(n)
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: Intn(%d) returned %d", ErrBadRandom, n, i)
	}
	return i, nil
}
