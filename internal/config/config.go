// Package config provides YAML-based configuration loading and difficulty
// presets for the color lines game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage drivers.
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// LinesConfig contains all configuration for the game and its services.
type LinesConfig struct {
	Variant    string           `yaml:"variant"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Driver string      `yaml:"driver"` // "sqlite" or "redis"
	Path   string      `yaml:"path"`   // SQLite database path, ~ is expanded
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig defines Redis connection parameters.
type RedisConfig struct {
	URL      string        `yaml:"url"`
	PoolSize int           `yaml:"pool_size"`
	SaveTTL  time.Duration `yaml:"save_ttl"` // 0 keeps saves forever
}

// ServerConfig defines the HTTP API listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for values the services cannot work with.
func (c LinesConfig) Validate() error {
	if c.Variant == "" {
		return fmt.Errorf("%w: variant is required", ErrInvalidConfig)
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Storage.Driver {
	case StorageSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage.path is required for sqlite", ErrInvalidConfig)
		}
	case StorageRedis:
		if c.Storage.Redis.URL == "" {
			return fmt.Errorf("%w: storage.redis.url is required for redis", ErrInvalidConfig)
		}
		if c.Storage.Redis.SaveTTL < 0 {
			return fmt.Errorf("%w: storage.redis.save_ttl must not be negative", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is required", ErrInvalidConfig)
	}
	return nil
}
