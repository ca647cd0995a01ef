package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
)

// ── Request / Response types ────────────────────────────────────────────────

type RecordAttemptRequest struct {
	Outcome          string  `json:"outcome" example:"PASS"`
	TimeSpentMinutes *int    `json:"time_spent_minutes,omitempty" example:"25"`
	Notes            *string `json:"notes,omitempty" example:"Solved with a hash map on the second try."`
}

func (r *RecordAttemptRequest) Validate() error {
	o, err := attempt.ParseOutcome(r.Outcome)
	if err != nil {
		return errors.New("outcome must be PASS, SHAKY, FAIL, or SKIP")
	}
	if o == attempt.OutcomePostpone {
		return errors.New("use the postpone endpoint to postpone a problem")
	}
	if r.TimeSpentMinutes != nil && *r.TimeSpentMinutes <= 0 {
		return errors.New("time_spent_minutes must be positive")
	}
	return nil
}

type AttemptResponse struct {
	ID               string    `json:"id" example:"q1w2e3r4t5y6u7i8"`
	ProblemID        string    `json:"problem_id" example:"x9y8z7w6v5u4t3s2"`
	Outcome          string    `json:"outcome" example:"PASS"`
	StageBefore      int       `json:"stage_before" example:"1"`
	StageAfter       int       `json:"stage_after" example:"2"`
	NextDueDateAfter time.Time `json:"next_due_date_after"`
	TimeSpentMinutes *int      `json:"time_spent_minutes,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	AttemptedAt      time.Time `json:"attempted_at"`
}

type RecordAttemptResponse struct {
	Problem ProblemResponse `json:"problem"`
	Attempt AttemptResponse `json:"attempt"`
}

func toAttemptResponse(a *attempt.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:               a.ID,
		ProblemID:        a.ProblemID,
		Outcome:          string(a.Outcome),
		StageBefore:      a.StageBefore,
		StageAfter:       a.StageAfter,
		NextDueDateAfter: a.NextDueDateAfter,
		TimeSpentMinutes: a.TimeSpentMinutes,
		Notes:            a.Notes,
		AttemptedAt:      a.AttemptedAt,
	}
}

func toAttemptResponses(attempts []*attempt.Attempt) []AttemptResponse {
	out := make([]AttemptResponse, len(attempts))
	for i, a := range attempts {
		out[i] = toAttemptResponse(a)
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recordAttempt logs a review outcome and reschedules the problem.
// @Summary      Record an attempt
// @Description  Apply a PASS/SHAKY/FAIL/SKIP outcome. The problem's mastery stage, interval and due date move per the transition table, and the attempt is appended to the ledger atomically.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Param        problemID  path      string                true  "Problem ID"
// @Param        body       body      RecordAttemptRequest  true  "Outcome to record"
// @Success      200        {object}  RecordAttemptResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/problems/{problemID}/attempt [post]
func (h *Handler) recordAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	var req RecordAttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	outcome, _ := attempt.ParseOutcome(req.Outcome)
	p, a, err := h.scheduler.RecordAttempt(ctx, problemID, outcome, req.TimeSpentMinutes, emptyToNil(req.Notes))
	if errors.Is(err, attempt.ErrInvalidOutcome) || errors.Is(err, attempt.ErrInvalidTimeSpent) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleStoreError(w, err, "problem") {
		return
	}

	respondJSON(w, http.StatusOK, RecordAttemptResponse{
		Problem: toProblemResponse(p),
		Attempt: toAttemptResponse(a),
	})
}

// postponeProblem pushes a problem's due date forward by one day.
// @Summary      Postpone a problem
// @Description  Push the due date forward without touching mastery state. The postpone is still logged in history.
// @Tags         Attempts
// @Produce      json
// @Param        problemID  path      string  true  "Problem ID"
// @Success      200        {object}  RecordAttemptResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/problems/{problemID}/postpone [post]
func (h *Handler) postponeProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	p, a, err := h.scheduler.Postpone(ctx, problemID)
	if h.handleStoreError(w, err, "problem") {
		return
	}

	respondJSON(w, http.StatusOK, RecordAttemptResponse{
		Problem: toProblemResponse(p),
		Attempt: toAttemptResponse(a),
	})
}
