package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vovakirdan/color-lines/internal/games/lines"
	"github.com/vovakirdan/color-lines/internal/registry"
	"github.com/vovakirdan/color-lines/internal/storage"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNoGame         = "NO_GAME"
	CodeUnknownVariant = "UNKNOWN_VARIANT"
	CodeGameOver       = "GAME_OVER"
	CodeSaveNotFound   = "SAVE_NOT_FOUND"
	CodeInvalidSave    = "INVALID_SAVE"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

func (e *httpError) Error() string {
	return e.apiError.Message
}

var errInternal = &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}

func invalidRequest(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// writeError writes an error response to the response writer
func writeError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, ErrNoGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoGame, "No game in progress"}}
	case errors.Is(err, registry.ErrUnknownVariant):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownVariant, err.Error()}}
	case errors.Is(err, lines.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, storage.ErrNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSaveNotFound, "Saved game not found"}}
	case errors.Is(err, lines.ErrInvalidSave):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidSave, err.Error()}}
	default:
		return errInternal
	}
}
