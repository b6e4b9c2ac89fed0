package lines

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/registry"
)

// ErrInvalidSave is returned when a save cannot be restored.
var ErrInvalidSave = errors.New("lines: invalid save")

// Save is the persisted form of a game.
type Save struct {
	GameID  string    `json:"game_id"`
	Variant string    `json:"variant"`
	Board   string    `json:"board"`   // core.Encode
	Pending string    `json:"pending"` // core.EncodeBalls
	Moves   int       `json:"moves"`
	Score   int       `json:"score"`
	SavedAt time.Time `json:"saved_at"`

	// Recorded is set once the final score of a finished game is stored.
	Recorded bool `json:"recorded,omitempty"`
}

// Export returns the persisted form of the game.
func (g *Game) Export(now time.Time) Save {
	return Save{
		GameID:   g.id,
		Variant:  g.variant.ID,
		Board:    core.Encode(g.board),
		Pending:  core.EncodeBalls(g.pending),
		Moves:    g.moves,
		Score:    g.board.Score(),
		SavedAt:  now,
		Recorded: g.recorded,
	}
}

// Restore rebuilds a game from a save. Pending balls that no longer fit
// the board are dropped and the queue is refilled. A nil rng is seeded
// from the clock.
func Restore(s Save, rng core.Random) (*Game, error) {
	v, err := registry.Get(s.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSave, err)
	}
	if s.Moves < 0 {
		return nil, fmt.Errorf("%w: negative move count", ErrInvalidSave)
	}

	board, err := core.Decode(s.Board, v.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: board: %w", ErrInvalidSave, err)
	}
	pending, err := core.DecodeBalls(s.Pending)
	if err != nil {
		return nil, fmt.Errorf("%w: pending: %w", ErrInvalidSave, err)
	}

	g, err := NewWithVariant(v, rng)
	if err != nil {
		return nil, err
	}
	g.id = s.GameID
	if g.id == "" {
		g.id = uuid.NewString()
	}
	g.board = board
	g.moves = s.Moves

	g.pending = g.pending[:0]
	for _, ball := range pending {
		if len(g.pending) == v.BallsPerTurn {
			break
		}
		if board.IsEmpty(ball.At) && board.InBounds(ball.At) {
			g.pending = append(g.pending, ball)
		}
	}
	g.refill()
	g.gameOver = board.IsFull()
	g.recorded = g.gameOver && s.Recorded
	return g, nil
}
