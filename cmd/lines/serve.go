package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-lines/internal/api"
	"github.com/vovakirdan/color-lines/internal/storage"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start an HTTP server exposing one game session as a JSON API.

If the save slot holds a game, the server resumes it.

Endpoints (under /api/v1):
  GET  /health                 - Liveness check
  GET  /variants               - Registered variants
  POST /game                   - Start a game {"variant": "lines"}
  GET  /game                   - Current game
  POST /game/moves             - {"from": {"x":0,"y":0}, "to": {"x":1,"y":0}, "name": "alice"}
  POST /game/save              - {"slot": "default"}
  POST /game/load              - {"slot": "default"}
  GET  /scores/{variant}       - Top scores (?limit=N, ?format=records)
  GET  /scores/{variant}/stats - Aggregated statistics

Examples:
  lines serve
  lines serve --addr :9090
  lines serve --config ./configs/lines.yaml`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.Close()

	if flagAddr != "" {
		e.cfg.Server.Addr = flagAddr
	}

	session := api.NewSession(e.store, e.cfg.Difficulty, newRandom)
	if _, err := session.Load(context.Background(), flagSlot); err == nil {
		e.logger.Info("resumed saved game", "slot", flagSlot)
	} else if !errors.Is(err, storage.ErrNotFound) {
		e.logger.Warn("cannot resume saved game", "slot", flagSlot, "error", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         e.logger,
		Session:        session,
		Store:          e.store,
		DefaultVariant: e.cfg.Variant,
	})

	server := api.NewServer(router, e.cfg.Server, e.logger)
	fmt.Printf("Serving color lines API on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		e.logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
