// lines is a command-line color lines game with an optional HTTP API.
//
// Usage:
//
//	lines list                    - List available variants
//	lines new [variant]           - Start a new game in the save slot
//	lines show                    - Show the game in the save slot
//	lines move <x1> <y1> <x2> <y2> - Move a ball
//	lines scores [variant]        - Show high scores
//	lines serve                   - Start the HTTP API
//	lines config                  - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.lines/config.yaml, ./configs/lines.yaml)
//	--db <path>         - SQLite database path
//	--seed <value>      - RNG seed for reproducible games
//	--slot <name>       - Save slot (default: "default")
//	--log-level <level> - debug, info, warn, error
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/config"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/storage"
	redisstore "github.com/vovakirdan/color-lines/internal/storage/redis"

	// Import the game to register its variants
	_ "github.com/vovakirdan/color-lines/internal/games/lines"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagSeed       int64
	flagSlot       string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(code)
	}
}

// exitError ends the process with a status other than 1. Commands return
// it instead of calling os.Exit so their deferred cleanup still runs.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "lines",
	Short: "Color Lines - line up five balls of a color",
	Long: `Color Lines is a puzzle played on a square board. Move a ball to any
empty cell it can reach through empty cells. Five or more balls of one
color in a row, column or diagonal are cleared and scored. Every move
that clears nothing drops the next balls onto the board; the game ends
when the board is full.

Available commands:
  list     - Show all variants
  new      - Start a new game
  show     - Show the current game
  move     - Move a ball
  scores   - View high scores
  serve    - Start the HTTP API
  config   - Print the effective configuration

Examples:
  lines new
  lines move 0 0 4 4
  lines scores --records
  lines serve --addr :9090`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "default", "Save slot name")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.LinesConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDBPath != "" {
		cfg.Storage.Driver = config.StorageSQLite
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = d
	}

	return cfg, cfg.Validate()
}

// newLogger creates the process logger at the configured level.
func newLogger(cfg config.LinesConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lines",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStorage opens the configured backend.
func openStorage(cfg config.LinesConfig, logger *log.Logger) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		rcfg := redisstore.DefaultConfig()
		rcfg.URL = cfg.Storage.Redis.URL
		if cfg.Storage.Redis.PoolSize > 0 {
			rcfg.PoolSize = cfg.Storage.Redis.PoolSize
		}
		rcfg.SaveTTL = cfg.Storage.Redis.SaveTTL
		logger.Debug("opening redis storage", "url", rcfg.URL)
		return redisstore.New(rcfg)
	default:
		logger.Debug("opening sqlite storage", "path", cfg.Storage.Path)
		return storage.Open(cfg.Storage.Path)
	}
}

// newRandom returns a seeded RNG when --seed is set, nil otherwise.
func newRandom() core.Random {
	if flagSeed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(flagSeed))
}

// env bundles what most commands need.
type env struct {
	cfg    config.LinesConfig
	logger *log.Logger
	store  storage.Storage
}

// setup loads config, creates the logger and opens storage.
func setup() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	store, err := openStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("cannot open storage: %w", err)
	}
	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("cannot close storage", "error", err)
	}
}
