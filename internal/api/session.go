package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/storage"
)

// ErrNoGame is returned when an operation needs a game and none was started.
var ErrNoGame = errors.New("api: no game in progress")

// Session is the single game served by the API. All access is serialized
// by mu since the game itself is not safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	game       *lines.Game
	store      storage.Storage
	difficulty config.DifficultyPreset
	newRandom  func() core.Random
	now        func() time.Time
}

// NewSession creates an empty session. newRandom supplies the RNG for each
// new or restored game; nil seeds from the clock.
func NewSession(store storage.Storage, difficulty config.DifficultyPreset, newRandom func() core.Random) *Session {
	if newRandom == nil {
		newRandom = func() core.Random { return nil }
	}
	return &Session{
		store:      store,
		difficulty: difficulty,
		newRandom:  newRandom,
		now:        time.Now,
	}
}

func (s *Session) view() lines.View {
	return s.game.Snapshot().View(s.difficulty.PreviewVisibility())
}

// NewGame replaces the current game with a fresh one.
func (s *Session) NewGame(variant string) (lines.View, error) {
	g, err := lines.New(variant, s.newRandom())
	if err != nil {
		return lines.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	return s.view(), nil
}

// View returns the current game as the player may see it.
func (s *Session) View() (lines.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return lines.View{}, ErrNoGame
	}
	return s.view(), nil
}

// Move plays one turn. When the turn ends the game, the final score is
// recorded under name. If recording fails, the next Move on the finished
// game tries again before reporting lines.ErrGameOver.
func (s *Session) Move(ctx context.Context, from, to core.Coord, name string) (lines.TurnResult, lines.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return lines.TurnResult{}, lines.View{}, ErrNoGame
	}

	turn, err := s.game.Move(from, to)
	if errors.Is(err, lines.ErrGameOver) {
		// A score that failed to record earlier is retried here.
		if _, rerr := storage.RecordGame(ctx, s.store, s.game, name); rerr != nil {
			return turn, s.view(), rerr
		}
		return turn, s.view(), err
	}
	if err != nil {
		return turn, s.view(), err
	}
	if turn.GameOver {
		if _, err := storage.RecordGame(ctx, s.store, s.game, name); err != nil {
			return turn, s.view(), err
		}
	}
	return turn, s.view(), nil
}

// Save stores the current game in slot.
func (s *Session) Save(ctx context.Context, slot string) (lines.Save, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return lines.Save{}, ErrNoGame
	}
	save := s.game.Export(s.now())
	if err := s.store.SaveGame(ctx, slot, save); err != nil {
		return lines.Save{}, err
	}
	return save, nil
}

// Load replaces the current game with the one saved in slot.
func (s *Session) Load(ctx context.Context, slot string) (lines.View, error) {
	save, err := s.store.LoadGame(ctx, slot)
	if err != nil {
		return lines.View{}, err
	}
	g, err := lines.Restore(save, s.newRandom())
	if err != nil {
		return lines.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
	return s.view(), nil
}
