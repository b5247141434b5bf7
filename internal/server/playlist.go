package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/tasks"
)

// PlaylistHandler serves the playlist build endpoint.
//
// Each request runs a complete build: the engine walks every anniversary
// date for the given birth date and the response carries the finished
// playlist. Builds can take a while for older birth dates because fetches
// are paced sequentially.
type PlaylistHandler struct {
	engine *tasks.PlaylistEngine
	logger *log.Logger
}

// NewPlaylistHandler creates a handler around a configured engine.
func NewPlaylistHandler(engine *tasks.PlaylistEngine, logger *log.Logger) *PlaylistHandler {
	return &PlaylistHandler{engine: engine, logger: logger}
}

// Routes returns the path patterns this handler serves.
func (h *PlaylistHandler) Routes() []string {
	return []string{"/api/playlist"}
}

// ServeHTTP validates the birth and count query parameters, runs the build
// and writes the playlist as JSON.
//
// Validation failures return 400 with an error message. A build aborted by
// a chart transport failure returns 502. Success returns 200 even when the
// playlist is empty.
func (h *PlaylistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	query := r.URL.Query()

	birthParam := query.Get("birth")
	if birthParam == "" {
		writeError(w, http.StatusBadRequest, "birth date is required")
		return
	}

	birth, err := shared.ParseDate(birthParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birth must be a date formatted YYYY-MM-DD")
		return
	}

	count, err := strconv.Atoi(query.Get("count"))
	if err != nil || count < 1 {
		writeError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}

	playlist, err := h.engine.Build(r.Context(), birth, count, nil)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "birth date is in the future")
			return
		}
		h.logger.Error("playlist build failed", "birth", birthParam, "count", count, "error", err)
		writeError(w, http.StatusBadGateway, shared.ErrChartUnavailable.Error())
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body of the form {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
