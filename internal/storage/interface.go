package storage

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/color-lines/internal/games/lines"
)

// ErrNotFound is returned when a saved game does not exist.
var ErrNotFound = errors.New("storage: not found")

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64     `json:"id,omitempty"` // Backend-assigned, zero for Redis
	Variant   string    `json:"variant"`
	Name      string    `json:"name"`
	GameID    string    `json:"game_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	Variant    string    `json:"variant"`
	GamesCount int       `json:"games_count"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	LastPlayed time.Time `json:"last_played"`
}

// Storage defines the interface for score and saved-game persistence.
type Storage interface {
	// Score operations
	SaveScore(ctx context.Context, entry ScoreEntry) error
	TopScores(ctx context.Context, variant string, limit int) ([]ScoreEntry, error)
	HighScore(ctx context.Context, variant string) (int, error)
	Stats(ctx context.Context, variant string) (GameStats, error)
	ClearScores(ctx context.Context, variant string) error

	// Saved game operations, keyed by slot name
	SaveGame(ctx context.Context, slot string, save lines.Save) error
	LoadGame(ctx context.Context, slot string) (lines.Save, error)
	DeleteGame(ctx context.Context, slot string) error

	Close() error
}
