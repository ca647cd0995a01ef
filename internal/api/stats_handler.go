package api

import (
	"net/http"

	"github.com/leetreview/backend/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type TagStatsResponse struct {
	Tag           string  `json:"tag" example:"dp"`
	TotalAttempts int     `json:"total_attempts" example:"6"`
	FailRate      float64 `json:"fail_rate" example:"0.67"`
}

type StatsResponse struct {
	TotalProblems          int                `json:"total_problems" example:"42"`
	DueToday               int                `json:"due_today" example:"5"`
	Overdue                int                `json:"overdue" example:"2"`
	AttemptsLast7Days      int                `json:"attempts_last_7_days" example:"12"`
	AttemptsLast30Days     int                `json:"attempts_last_30_days" example:"40"`
	WeakTags               []TagStatsResponse `json:"weak_tags"`
	MasteryDistribution    []int              `json:"mastery_distribution"`
	DifficultyDistribution map[string]int     `json:"difficulty_distribution"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns the dashboard rollup.
// @Summary      Statistics
// @Description  Read-only rollups derived from the problem collection and attempt ledger. Calling twice over the same data and the same instant yields identical output.
// @Tags         Stats
// @Produce      json
// @Param        now  query  string  false  "RFC 3339 override of the evaluation instant"
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
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
	attempts, err := h.store.ListAllAttempts(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load attempts")
		return
	}

	summary := stats.Compute(problems, attempts, now)

	weakTags := make([]TagStatsResponse, len(summary.WeakTags))
	for i, t := range summary.WeakTags {
		weakTags[i] = TagStatsResponse{
			Tag:           t.Tag,
			TotalAttempts: t.TotalAttempts,
			FailRate:      t.FailRate,
		}
	}

	difficulty := make(map[string]int, len(summary.DifficultyDistribution))
	for d, n := range summary.DifficultyDistribution {
		difficulty[string(d)] = n
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		TotalProblems:          summary.TotalProblems,
		DueToday:               summary.DueToday,
		Overdue:                summary.Overdue,
		AttemptsLast7Days:      summary.AttemptsLast7Days,
		AttemptsLast30Days:     summary.AttemptsLast30Days,
		WeakTags:               weakTags,
		MasteryDistribution:    summary.MasteryDistribution[:],
		DifficultyDistribution: difficulty,
	})
}
