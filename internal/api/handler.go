package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/games/lines/core"
	"github.com/vovakirdan/color-lines/internal/registry"
	"github.com/vovakirdan/color-lines/internal/storage"
)

// DefaultSlot is used when a save or load request names no slot.
const DefaultSlot = "default"

type handler struct {
	session *Session
	store   storage.Storage
	logger  *log.Logger
	variant string
}

type newGameRequest struct {
	Variant string `json:"variant"`
}

type moveRequest struct {
	From *core.Coord `json:"from"`
	To   *core.Coord `json:"to"`
	Name string      `json:"name"`
}

type moveResponse struct {
	Turn lines.TurnResult `json:"turn"`
	Game lines.View       `json:"game"`
}

type slotRequest struct {
	Slot string `json:"slot"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// decode reads an optional JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return invalidRequest("Invalid JSON body")
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) variants(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, registry.List())
}

func (h *handler) newGame(w http.ResponseWriter, r *http.Request) {
	var req newGameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Variant == "" {
		req.Variant = h.variant
	}

	view, err := h.session.NewGame(req.Variant)
	if err != nil {
		writeError(w, err)
		return
	}
	h.logger.Info("game started", "id", view.ID, "variant", view.Variant)
	writeJSON(w, http.StatusCreated, view)
}

func (h *handler) getGame(w http.ResponseWriter, _ *http.Request) {
	view, err := h.session.View()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handler) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.From == nil || req.To == nil {
		writeError(w, invalidRequest("Both from and to are required"))
		return
	}

	turn, view, err := h.session.Move(r.Context(), *req.From, *req.To, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	if turn.GameOver {
		h.logger.Info("game over", "id", view.ID, "score", view.Score, "name", req.Name)
	}
	writeJSON(w, http.StatusOK, moveResponse{Turn: turn, Game: view})
}

func (h *handler) save(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Slot == "" {
		req.Slot = DefaultSlot
	}

	save, err := h.session.Save(r.Context(), req.Slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, save)
}

func (h *handler) load(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Slot == "" {
		req.Slot = DefaultSlot
	}

	view, err := h.session.Load(r.Context(), req.Slot)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// scores lists the top scores of a variant. format=records renders the
// plain-text records list instead of JSON.
func (h *handler) scores(w http.ResponseWriter, r *http.Request) {
	variant := mux.Vars(r)["variant"]
	if !registry.Exists(variant) {
		writeError(w, registry.ErrUnknownVariant)
		return
	}

	limit := storage.MaxRecords
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, invalidRequest("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.store.TopScores(r.Context(), variant, limit)
	if err != nil {
		h.logger.Error("cannot load scores", "variant", variant, "error", err)
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "records" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, storage.FormatRecords(storage.RecordsFromScores(entries)))
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	variant := mux.Vars(r)["variant"]
	if !registry.Exists(variant) {
		writeError(w, registry.ErrUnknownVariant)
		return
	}

	stats, err := h.store.Stats(r.Context(), variant)
	if err != nil {
		h.logger.Error("cannot load stats", "variant", variant, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
