// Package api exposes a color lines session over HTTP as a JSON API.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/color-lines/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *log.Logger
	Session *Session
	Store   storage.Storage

	// DefaultVariant is used when a new game request names none
	DefaultVariant string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	h := &handler{
		session: cfg.Session,
		store:   cfg.Store,
		logger:  cfg.Logger,
		variant: cfg.DefaultVariant,
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(Recovery(cfg.Logger))
	api.Use(Logging(cfg.Logger))

	api.HandleFunc("/health", h.health).Methods(http.MethodGet)
	api.HandleFunc("/variants", h.variants).Methods(http.MethodGet)

	// Game routes
	api.HandleFunc("/game", h.newGame).Methods(http.MethodPost)
	api.HandleFunc("/game", h.getGame).Methods(http.MethodGet)
	api.HandleFunc("/game/moves", h.move).Methods(http.MethodPost)
	api.HandleFunc("/game/save", h.save).Methods(http.MethodPost)
	api.HandleFunc("/game/load", h.load).Methods(http.MethodPost)

	// Score routes
	api.HandleFunc("/scores/{variant}", h.scores).Methods(http.MethodGet)
	api.HandleFunc("/scores/{variant}/stats", h.stats).Methods(http.MethodGet)

	return r
}
