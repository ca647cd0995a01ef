package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type HistoryAttemptResponse struct {
	ID                string    `json:"id"`
	ProblemID         string    `json:"problem_id"`
	ProblemTitle      string    `json:"problem_title" example:"Two Sum"`
	ProblemDifficulty string    `json:"problem_difficulty" example:"EASY"`
	Outcome           string    `json:"outcome" example:"PASS"`
	StageBefore       int       `json:"stage_before"`
	StageAfter        int       `json:"stage_after"`
	TimeSpentMinutes  *int      `json:"time_spent_minutes,omitempty"`
	AttemptedAt       time.Time `json:"attempted_at"`
}

type HistoryResponse struct {
	Attempts []HistoryAttemptResponse `json:"attempts"`
	Total    int                      `json:"total"`
}

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// ── Handlers ────────────────────────────────────────────────────────────────

// getHistory returns recent attempts across all problems.
// @Summary      Attempt history
// @Description  Attempts across all problems in reverse chronological order, enriched with problem title and difficulty.
// @Tags         History
// @Produce      json
// @Param        limit    query  int     false  "Page size, 1-200 (default 50)"
// @Param        offset   query  int     false  "Offset into the result set"
// @Param        outcome  query  string  false  "Filter by outcome"
// @Success      200  {object}  HistoryResponse
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := store.HistoryFilter{
		Limit:  intQueryParam(q.Get("limit"), defaultHistoryLimit),
		Offset: intQueryParam(q.Get("offset"), 0),
	}
	if filter.Limit < 1 || filter.Limit > maxHistoryLimit {
		filter.Limit = defaultHistoryLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if raw := q.Get("outcome"); raw != "" {
		outcome, err := attempt.ParseOutcome(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "outcome must be PASS, SHAKY, FAIL, SKIP, or POSTPONE")
			return
		}
		filter.Outcome = &outcome
	}

	entries, total, err := h.store.ListHistory(ctx, filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	attempts := make([]HistoryAttemptResponse, len(entries))
	for i, e := range entries {
		attempts[i] = HistoryAttemptResponse{
			ID:                e.Attempt.ID,
			ProblemID:         e.Attempt.ProblemID,
			ProblemTitle:      e.ProblemTitle,
			ProblemDifficulty: string(e.ProblemDifficulty),
			Outcome:           string(e.Attempt.Outcome),
			StageBefore:       e.Attempt.StageBefore,
			StageAfter:        e.Attempt.StageAfter,
			TimeSpentMinutes:  e.Attempt.TimeSpentMinutes,
			AttemptedAt:       e.Attempt.AttemptedAt,
		}
	}

	respondJSON(w, http.StatusOK, HistoryResponse{
		Attempts: attempts,
		Total:    total,
	})
}

func intQueryParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
