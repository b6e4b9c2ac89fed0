package lines

import (
	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
)

// StateType represents the current game state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete game state.
type Snapshot struct {
	ID         string      `json:"id"`
	Variant    string      `json:"variant"`
	Size       int         `json:"size"`
	Score      int         `json:"score"`
	Moves      int         `json:"moves"`
	EmptyCells int         `json:"empty_cells"`
	State      StateType   `json:"state"`
	Board      *core.Board `json:"board"`
	Pending    []core.Ball `json:"-"` // Use View to expose it to a player
}

// Snapshot returns the current game snapshot. The board is a copy.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		ID:         g.id,
		Variant:    g.variant.ID,
		Size:       g.board.Size(),
		Score:      g.board.Score(),
		Moves:      g.moves,
		EmptyCells: g.board.EmptyCount(),
		State:      state,
		Board:      g.board.Clone(),
		Pending:    g.Pending(),
	}
}

// View is a snapshot as a player may see it.
type View struct {
	Snapshot
	Rows []string      `json:"rows"`
	Next []PreviewBall `json:"next"`
}

// View filters the pending balls through the given visibility.
func (s Snapshot) View(v config.Visibility) View {
	next := PreviewFor(s.Pending, v)
	if next == nil {
		next = []PreviewBall{}
	}
	return View{
		Snapshot: s,
		Rows:     s.Board.Rows(),
		Next:     next,
	}
}
