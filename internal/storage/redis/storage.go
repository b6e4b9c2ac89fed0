// Package redis provides a Redis-backed implementation of storage.Storage.
// Scores live in one sorted set per variant; saved games are JSON blobs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Score operations

// SaveScore adds the entry to the variant's sorted set. The member carries
// the JSON-encoded entry so that name, game and time travel with the score.
func (s *Storage) SaveScore(ctx context.Context, entry storage.ScoreEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.ID = 0

	member, err := encodeMember(entry)
	if err != nil {
		return err
	}
	err = s.client.ZAdd(ctx, scoresKey(entry.Variant), redis.Z{
		Score:  float64(entry.Score),
		Member: member,
	}).Err()
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

func (s *Storage) TopScores(ctx context.Context, variant string, limit int) ([]storage.ScoreEntry, error) {
	if limit <= 0 {
		limit = storage.MaxRecords
	}
	zs, err := s.client.ZRevRangeWithScores(ctx, scoresKey(variant), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return decodeEntries(zs)
}

func (s *Storage) HighScore(ctx context.Context, variant string) (int, error) {
	zs, err := s.client.ZRevRangeWithScores(ctx, scoresKey(variant), 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if len(zs) == 0 {
		return 0, nil
	}
	return int(zs[0].Score), nil
}

func (s *Storage) Stats(ctx context.Context, variant string) (storage.GameStats, error) {
	stats := storage.GameStats{Variant: variant}

	zs, err := s.client.ZRangeWithScores(ctx, scoresKey(variant), 0, -1).Result()
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	entries, err := decodeEntries(zs)
	if err != nil {
		return stats, err
	}

	for _, e := range entries {
		stats.GamesCount++
		stats.TotalScore += int64(e.Score)
		stats.HighScore = max(stats.HighScore, e.Score)
		if e.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = e.CreatedAt
		}
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats, nil
}

func (s *Storage) ClearScores(ctx context.Context, variant string) error {
	if err := s.client.Del(ctx, scoresKey(variant)).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// encodeMember prefixes the JSON entry with its creation time, inverted
// and zero-padded. Redis orders equal scores by member, descending in
// ZREVRANGE, so older entries come first on ties like in the SQLite store.
func encodeMember(entry storage.ScoreEntry) (string, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode score: %w", err)
	}
	ns := max(entry.CreatedAt.UnixNano(), 0)
	return fmt.Sprintf("%019d%s%s", math.MaxInt64-ns, memberSep, data), nil
}

func decodeEntries(zs []redis.Z) ([]storage.ScoreEntry, error) {
	entries := make([]storage.ScoreEntry, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			return nil, fmt.Errorf("storage: unexpected score member %T", z.Member)
		}
		_, data, ok := strings.Cut(member, memberSep)
		if !ok {
			return nil, fmt.Errorf("storage: malformed score member %q", member)
		}
		var e storage.ScoreEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("storage: cannot decode score: %w", err)
		}
		e.Score = int(z.Score)
		entries = append(entries, e)
	}
	return entries, nil
}

// Saved game operations

func (s *Storage) SaveGame(ctx context.Context, slot string, save lines.Save) error {
	if save.SavedAt.IsZero() {
		save.SavedAt = time.Now().UTC()
	}
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}
	if err := s.client.Set(ctx, saveKey(slot), data, s.cfg.SaveTTL).Err(); err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

func (s *Storage) LoadGame(ctx context.Context, slot string) (lines.Save, error) {
	var save lines.Save
	data, err := s.client.Get(ctx, saveKey(slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return save, fmt.Errorf("%w: slot %q", storage.ErrNotFound, slot)
		}
		return save, fmt.Errorf("storage: cannot load game: %w", err)
	}

	if err := json.Unmarshal(data, &save); err != nil {
		return save, fmt.Errorf("storage: cannot decode save: %w", err)
	}
	return save, nil
}

func (s *Storage) DeleteGame(ctx context.Context, slot string) error {
	if err := s.client.Del(ctx, saveKey(slot)).Err(); err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}
	return nil
}
