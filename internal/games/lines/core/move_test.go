package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

func TestMoveBallRejections(t *testing.T) {
	b := newBoard(t, 5)
	fill(t, b, core.ColorRed, core.C(0, 0))
	fill(t, b, core.ColorBlue, core.C(1, 0))
	// Wall off the right half.
	fill(t, b, core.ColorBlack, core.C(3, 0), core.C(3, 1), core.C(3, 2), core.C(3, 3), core.C(3, 4))

	tests := []struct {
		name     string
		from, to core.Coord
		reason   core.RejectReason
	}{
		{"from out of range", core.C(-1, 0), core.C(0, 1), core.RejectOutOfRange},
		{"to out of range", core.C(0, 0), core.C(0, 5), core.RejectOutOfRange},
		{"empty source", core.C(2, 2), core.C(2, 3), core.RejectEmptySource},
		{"occupied target", core.C(0, 0), core.C(1, 0), core.RejectOccupiedTarget},
		{"same cell", core.C(0, 0), core.C(0, 0), core.RejectOccupiedTarget},
		{"no path", core.C(0, 0), core.C(4, 4), core.RejectNoPath},
	}

	before := b.Clone()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := b.MoveBall(tt.from, tt.to)
			assert.False(t, res.Accepted())
			assert.Equal(t, core.MoveRejected, res.Status)
			assert.Equal(t, tt.reason, res.Reason)
			assert.Equal(t, 0, res.Score())
			assert.True(t, b.Equal(before), "rejected move must not change the board")
		})
	}
}

func TestMoveBallOccupiedTargetRejectsEvenWithPath(t *testing.T) {
	b := newBoard(t, 3)
	fill(t, b, core.ColorRed, core.C(0, 0))
	fill(t, b, core.ColorGreen, core.C(2, 2))

	res := b.MoveBall(core.C(0, 0), core.C(2, 2))
	assert.Equal(t, core.RejectOccupiedTarget, res.Reason)
}

func TestMoveBallAccepted(t *testing.T) {
	b := newBoard(t, 5)
	fill(t, b, core.ColorMagenta, core.C(0, 0))

	res := b.MoveBall(core.C(0, 0), core.C(4, 4))

	assert.True(t, res.Accepted())
	assert.Equal(t, core.RejectNone, res.Reason)
	assert.Equal(t, 0, res.Score())
	assert.True(t, b.IsEmpty(core.C(0, 0)))
	assert.Equal(t, core.Occupied(core.ColorMagenta), b.Get(core.C(4, 4)))
	assert.Equal(t, 24, b.EmptyCount())
	requireIndexConsistent(t, b)
}

func TestMoveBallCompletesLine(t *testing.T) {
	b := newBoard(t, 9)
	fill(t, b, core.ColorRed, row(0, 0, 3)...)
	fill(t, b, core.ColorRed, core.C(8, 8))

	res := b.MoveBall(core.C(8, 8), core.C(4, 0))

	assert.True(t, res.Accepted())
	assert.Equal(t, 10, res.Score())
	assert.Equal(t, 10, b.Score())
	assert.Equal(t, 81, b.EmptyCount())
	requireIndexConsistent(t, b)

	// A second line adds to the running total.
	fill(t, b, core.ColorBlue, column(0, 0, 4)...)
	fill(t, b, core.ColorBlue, core.C(8, 8))
	res = b.MoveBall(core.C(8, 8), core.C(0, 5))
	assert.Equal(t, 20, res.Score())
	assert.Equal(t, 30, b.Score())
}

func TestMoveStatusString(t *testing.T) {
	assert.Equal(t, "accepted", core.MoveAccepted.String())
	assert.Equal(t, "rejected", core.MoveRejected.String())
}
