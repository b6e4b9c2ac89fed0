// Package lines implements a color lines game session on top of the board
// engine in lines/core: the queue of upcoming balls, turn flow, game over,
// snapshots and saves.
package lines

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/registry"
)

// ErrGameOver is returned by Move once the board has filled up.
var ErrGameOver = errors.New("lines: game is over")

// Game is a single color lines session. It is not safe for concurrent use.
type Game struct {
	id      string
	variant registry.Variant
	rng     core.Random

	board   *core.Board
	pending []core.Ball // next balls, placed last to first
	moves   int

	gameOver bool
	recorded bool // final score stored
}

// TurnResult is the outcome of one Move.
type TurnResult struct {
	Move           core.MoveResult `json:"move"`
	Placed         []core.Ball     `json:"placed,omitempty"`
	PlacementScore int             `json:"placement_score"`
	Score          int             `json:"score"` // Total after the turn
	GameOver       bool            `json:"game_over"`
}

// Gained returns the points earned during the turn.
func (r TurnResult) Gained() int {
	return r.Move.Score() + r.PlacementScore
}

// New starts a game of the registered variant. A nil rng is seeded from
// the clock.
func New(variantID string, rng core.Random) (*Game, error) {
	v, err := registry.Get(variantID)
	if err != nil {
		return nil, err
	}
	return NewWithVariant(v, rng)
}

// NewWithVariant starts a game with explicit rules.
func NewWithVariant(v registry.Variant, rng core.Random) (*Game, error) {
	board, err := core.NewBoard(v.Size)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		variant: v,
		rng:     rng,
		board:   board,
	}
	g.Reset()
	return g, nil
}

// Reset clears the board and starts over with a new ID. Initial balls
// never count toward the score.
func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.board.Clear()
	g.pending = g.pending[:0]
	g.moves = 0
	g.recorded = false

	for i := 0; i < g.variant.InitialBalls; i++ {
		ball, ok := g.board.Pick(g.rng)
		if !ok {
			break
		}
		// report only
		_, _ = g.board.PlaceAndScore(ball.At, ball.Color)
	}

	g.refill()
	g.gameOver = g.board.IsFull()
}

// ID returns the session identifier.
func (g *Game) ID() string { return g.id }

// Variant returns the rules the game is played with.
func (g *Game) Variant() registry.Variant { return g.variant }

// Score returns the current score.
func (g *Game) Score() int { return g.board.Score() }

// Moves returns the number of accepted moves.
func (g *Game) Moves() int { return g.moves }

// GameOver reports whether the board has filled up.
func (g *Game) GameOver() bool { return g.gameOver }

// Recorded reports whether the final score has been stored.
func (g *Game) Recorded() bool { return g.recorded }

// MarkRecorded notes that the final score has been stored. It has no
// effect while the game is still being played.
func (g *Game) MarkRecorded() {
	if g.gameOver {
		g.recorded = true
	}
}

// Board returns a copy of the board.
func (g *Game) Board() *core.Board { return g.board.Clone() }

// Pending returns a copy of the upcoming balls.
func (g *Game) Pending() []core.Ball {
	out := make([]core.Ball, len(g.pending))
	copy(out, g.pending)
	return out
}

// Move plays one turn. A rejected move changes nothing and is reported in
// the result, not as an error. An accepted move that clears nothing drops
// the pending balls onto the board.
func (g *Game) Move(from, to core.Coord) (TurnResult, error) {
	if g.gameOver {
		return TurnResult{Score: g.board.Score(), GameOver: true}, ErrGameOver
	}

	res := g.board.MoveBall(from, to)
	turn := TurnResult{Move: res}
	if !res.Accepted() {
		turn.Score = g.board.Score()
		return turn, nil
	}
	g.moves++

	if !res.Line.Scored() {
		turn.Placed, turn.PlacementScore = g.placePending()
	}
	g.refill()

	g.gameOver = g.board.IsFull()
	turn.Score = g.board.Score()
	turn.GameOver = g.gameOver
	return turn, nil
}

// placePending drops every pending ball, last first. A ball whose cell
// has been taken is replaced by a fresh one from the allocator.
func (g *Game) placePending() ([]core.Ball, int) {
	var placed []core.Ball
	total := 0
	for i := len(g.pending) - 1; i >= 0; i-- {
		ball := g.pending[i]
		if !g.board.IsEmpty(ball.At) {
			fresh, ok := g.board.Pick(g.rng)
			if !ok {
				continue
			}
			ball = fresh
		}
		line, err := g.board.PlaceAndCommit(ball.At, ball.Color)
		if err != nil {
			continue
		}
		placed = append(placed, ball)
		total += line.Score
	}
	g.pending = g.pending[:0]
	return placed, total
}

// refill drops pending balls that point at occupied cells and tops the
// queue up to BallsPerTurn while the board has room.
func (g *Game) refill() {
	kept := g.pending[:0]
	for _, ball := range g.pending {
		if g.board.IsEmpty(ball.At) {
			kept = append(kept, ball)
		}
	}
	g.pending = kept

	for len(g.pending) < g.variant.BallsPerTurn {
		ball, ok := g.board.Pick(g.rng)
		if !ok {
			break
		}
		g.pending = append(g.pending, ball)
	}
}
