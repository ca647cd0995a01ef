package api

import (
	"net/http"

	"github.com/leetreview/backend/internal/domain/dueset"
)

// ── Request / Response types ────────────────────────────────────────────────

type TodayResponse struct {
	Due []ProblemResponse `json:"due"`
	New []ProblemResponse `json:"new"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getToday returns the review session for the evaluation instant.
// @Summary      Today's review session
// @Description  Due: everything with next_due_date up to end of today (overdue included), soonest first. New: an optional pool of never-attempted problems not already due, newest first.
// @Tags         Today
// @Produce      json
// @Param        now  query  string  false  "RFC 3339 override of the evaluation instant"
// @Success      200  {object}  TodayResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/today [get]
func (h *Handler) getToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now, ok := h.evalNow(w, r)
	if !ok {
		return
	}

	problems, err := h.store.ListProblems(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load problems")
		return
	}

	due := dueset.DuePool(problems, now)
	fresh := dueset.NewPool(problems, due, h.newPoolLimit)

	respondJSON(w, http.StatusOK, TodayResponse{
		Due: toProblemResponses(due),
		New: toProblemResponses(fresh),
	})
}
