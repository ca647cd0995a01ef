// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/leetreview/backend/internal/clock"
	"github.com/leetreview/backend/internal/service"
	"github.com/leetreview/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store        store.Store
	scheduler    *service.Scheduler
	clock        clock.Clock
	logger       *slog.Logger
	newPoolLimit int
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, scheduler *service.Scheduler, c clock.Clock, logger *slog.Logger, newPoolLimit int) *Handler {
	return &Handler{
		store:        s,
		scheduler:    scheduler,
		clock:        c,
		logger:       logger,
		newPoolLimit: newPoolLimit,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// validator is implemented by request types that can check themselves.
type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the request body and runs its Validate
// method. On failure it writes a 400 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// evalNow resolves the evaluation instant for due-set and stats
// queries: an RFC 3339 "now" query parameter when present, the
// injected clock otherwise. Returns ok=false after writing a 400 for
// an unparseable override.
func (h *Handler) evalNow(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("now")
	if raw == "" {
		return h.clock.Now(), true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "now must be an RFC 3339 timestamp")
		return time.Time{}, false
	}
	return t, true
}
