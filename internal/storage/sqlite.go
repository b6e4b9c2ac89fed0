// Package storage provides persistence for scores and saved games.
// The default backend is SQLite via the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies; storage/redis provides the alternative.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/color-lines/internal/games/lines"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Ensure Store implements the interface
var _ Storage = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			game_id TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);

		CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			board TEXT NOT NULL,
			pending TEXT NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			saved_at TEXT NOT NULL,
			recorded INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score. A zero CreatedAt is stamped with the
// current time.
func (s *Store) SaveScore(ctx context.Context, entry ScoreEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (variant, name, game_id, score, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.Variant, entry.Name, entry.GameID, entry.Score,
		entry.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the top N scores for the given variant.
// Results are ordered by score descending, older entries first on ties
// (by created_at, then insertion order).
func (s *Store) TopScores(ctx context.Context, variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = MaxRecords
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, variant, name, game_id, score, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.Name, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context, variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a variant.
func (s *Store) Stats(ctx context.Context, variant string) (GameStats, error) {
	stats := GameStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearScores deletes all scores for the given variant.
func (s *Store) ClearScores(ctx context.Context, variant string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveGame stores a game under slot, replacing any previous save.
func (s *Store) SaveGame(ctx context.Context, slot string, save lines.Save) error {
	if save.SavedAt.IsZero() {
		save.SavedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, game_id, variant, board, pending, moves, score, saved_at, recorded)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
			game_id = excluded.game_id,
			variant = excluded.variant,
			board = excluded.board,
			pending = excluded.pending,
			moves = excluded.moves,
			score = excluded.score,
			saved_at = excluded.saved_at,
			recorded = excluded.recorded`,
		slot, save.GameID, save.Variant, save.Board, save.Pending, save.Moves, save.Score,
		save.SavedAt.UTC().Format(time.RFC3339Nano), save.Recorded,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame retrieves the game saved under slot.
func (s *Store) LoadGame(ctx context.Context, slot string) (lines.Save, error) {
	var save lines.Save
	var savedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT game_id, variant, board, pending, moves, score, saved_at, recorded
		 FROM saves WHERE slot = ?`,
		slot,
	).Scan(&save.GameID, &save.Variant, &save.Board, &save.Pending, &save.Moves, &save.Score, &savedAt, &save.Recorded)

	if errors.Is(err, sql.ErrNoRows) {
		return save, fmt.Errorf("%w: slot %q", ErrNotFound, slot)
	}
	if err != nil {
		return save, fmt.Errorf("storage: cannot load game: %w", err)
	}

	if t, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
		save.SavedAt = t
	}
	return save, nil
}

// DeleteGame removes the save in slot. Deleting a missing slot is not an error.
func (s *Store) DeleteGame(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM saves WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
