package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

// DefaultLinesConfig returns the hardcoded default configuration.
// It mirrors defaults/lines.yaml and is used if the embedded file is unusable.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Variant:    "lines",
		Difficulty: DifficultyEasy,
		Storage: StorageConfig{
			Driver: StorageSQLite,
			Path:   "~/.lines/lines.db",
			Redis: RedisConfig{
				URL:      "redis://localhost:6379/0",
				PoolSize: 10,
				SaveTTL:  30 * 24 * time.Hour,
			},
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLinesYAML
}
