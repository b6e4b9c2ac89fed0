package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

func newBoard(t *testing.T, size int) *core.Board {
	t.Helper()
	b, err := core.NewBoard(size)
	require.NoError(t, err)
	return b
}

func fill(t *testing.T, b *core.Board, color core.Color, coords ...core.Coord) {
	t.Helper()
	for _, c := range coords {
		require.NoError(t, b.Set(c, core.Occupied(color)))
	}
}

// requireIndexConsistent checks that EmptyCells matches a full grid scan.
func requireIndexConsistent(t *testing.T, b *core.Board) {
	t.Helper()
	want := make(map[core.Coord]bool)
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			c := core.C(x, y)
			if b.IsEmpty(c) {
				want[c] = true
			}
		}
	}
	got := b.EmptyCells()
	require.Len(t, got, len(want), "index size")
	require.Equal(t, len(want), b.EmptyCount())
	seen := make(map[core.Coord]bool)
	for _, c := range got {
		require.True(t, want[c], "index lists occupied cell %v", c)
		require.False(t, seen[c], "index lists %v twice", c)
		seen[c] = true
	}
}

// queueRandom returns queued Intn results in order, then 0.
type queueRandom struct {
	results []int
	calls   []int
}

func (r *queueRandom) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.results) == 0 {
		return 0
	}
	v := r.results[0]
	r.results = r.results[1:]
	return v
}
