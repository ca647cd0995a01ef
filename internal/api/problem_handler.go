package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/leetreview/backend/internal/domain/dueset"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/domain/schedule"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateProblemRequest struct {
	Title          string   `json:"title" example:"Two Sum"`
	Platform       string   `json:"platform,omitempty" example:"LeetCode"`
	URL            *string  `json:"url,omitempty" example:"https://leetcode.com/problems/two-sum/"`
	Difficulty     string   `json:"difficulty" example:"EASY"`
	Tags           []string `json:"tags,omitempty" example:"array,hash-map"`
	NotesTrick     *string  `json:"notes_trick,omitempty"`
	NotesMistakes  *string  `json:"notes_mistakes,omitempty"`
	NotesEdgeCases *string  `json:"notes_edge_cases,omitempty"`
}

func (r *CreateProblemRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if _, err := problem.ParseDifficulty(r.Difficulty); err != nil {
		return err
	}
	if r.URL != nil && *r.URL != "" &&
		!strings.HasPrefix(*r.URL, "http://") && !strings.HasPrefix(*r.URL, "https://") {
		return errors.New("url must start with http:// or https://")
	}
	return nil
}

type UpdateProblemRequest struct {
	Title          *string  `json:"title,omitempty"`
	Platform       *string  `json:"platform,omitempty"`
	URL            *string  `json:"url,omitempty"`
	Difficulty     *string  `json:"difficulty,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	NotesTrick     *string  `json:"notes_trick,omitempty"`
	NotesMistakes  *string  `json:"notes_mistakes,omitempty"`
	NotesEdgeCases *string  `json:"notes_edge_cases,omitempty"`
}

type UpdateNotesRequest struct {
	Trick     *string `json:"trick,omitempty"`
	Mistakes  *string `json:"mistakes,omitempty"`
	EdgeCases *string `json:"edge_cases,omitempty"`
}

type ProblemResponse struct {
	ID                   string     `json:"id" example:"x9y8z7w6v5u4t3s2"`
	Title                string     `json:"title" example:"Two Sum"`
	Platform             string     `json:"platform" example:"LeetCode"`
	URL                  *string    `json:"url,omitempty"`
	Difficulty           string     `json:"difficulty" example:"EASY"`
	Tags                 []string   `json:"tags"`
	NotesTrick           *string    `json:"notes_trick,omitempty"`
	NotesMistakes        *string    `json:"notes_mistakes,omitempty"`
	NotesEdgeCases       *string    `json:"notes_edge_cases,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	MasteryStage         int        `json:"mastery_stage" example:"2"`
	MasteryLabel         string     `json:"mastery_label" example:"Familiar"`
	IntervalDays         int        `json:"interval_days" example:"7"`
	NextDueDate          time.Time  `json:"next_due_date"`
	ConsecutiveSuccesses int        `json:"consecutive_successes" example:"2"`
	LastOutcome          *string    `json:"last_outcome,omitempty" example:"PASS"`
	LastAttemptedAt      *time.Time `json:"last_attempted_at,omitempty"`
}

type ProblemWithAttemptsResponse struct {
	ProblemResponse
	Attempts []AttemptResponse `json:"attempts"`
}

func toProblemResponse(p *problem.Problem) ProblemResponse {
	return ProblemResponse{
		ID:                   p.ID,
		Title:                p.Title,
		Platform:             p.Platform,
		URL:                  p.URL,
		Difficulty:           string(p.Difficulty),
		Tags:                 p.Tags,
		NotesTrick:           p.Notes.Trick,
		NotesMistakes:        p.Notes.Mistakes,
		NotesEdgeCases:       p.Notes.EdgeCases,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
		MasteryStage:         p.MasteryStage,
		MasteryLabel:         schedule.StageLabel(p.MasteryStage),
		IntervalDays:         p.IntervalDays,
		NextDueDate:          p.NextDueDate,
		ConsecutiveSuccesses: p.ConsecutiveSuccesses,
		LastOutcome:          p.LastOutcome,
		LastAttemptedAt:      p.LastAttemptedAt,
	}
}

func toProblemResponses(problems []*problem.Problem) []ProblemResponse {
	out := make([]ProblemResponse, len(problems))
	for i, p := range problems {
		out[i] = toProblemResponse(p)
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createProblem registers a new problem, immediately due for review.
// @Summary      Create a problem
// @Description  Track a new coding problem. It starts at mastery stage 0 and is immediately due.
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        body  body      CreateProblemRequest  true  "Problem to create"
// @Success      201   {object}  ProblemResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/problems [post]
func (h *Handler) createProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateProblemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	difficulty, _ := problem.ParseDifficulty(req.Difficulty)
	p, err := problem.New(req.Title, req.URL, req.Platform, difficulty, req.Tags, problem.Notes{
		Trick:     req.NotesTrick,
		Mistakes:  req.NotesMistakes,
		EdgeCases: req.NotesEdgeCases,
	}, h.clock.Now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveProblem(ctx, p); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save problem")
		return
	}

	respondJSON(w, http.StatusCreated, toProblemResponse(p))
}

// listProblems lists problems with combinable filters and sorts.
// @Summary      List problems
// @Description  List all problems. Filters (search, difficulty, tag, status) and sort compose independently.
// @Tags         Problems
// @Produce      json
// @Param        search      query  string  false  "Case-insensitive substring match on title"
// @Param        difficulty  query  string  false  "EASY, MEDIUM or HARD"
// @Param        tag         query  string  false  "Exact tag match"
// @Param        status      query  string  false  "overdue, due_soon or mastered"
// @Param        sort        query  string  false  "next_due_date (default), last_attempted, difficulty, created_at"
// @Success      200  {array}   ProblemResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/problems [get]
func (h *Handler) listProblems(w http.ResponseWriter, r *http.Request) {
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

	q := r.URL.Query()
	filter := dueset.Filter{
		Search:     q.Get("search"),
		Difficulty: q.Get("difficulty"),
		Tag:        q.Get("tag"),
		Status:     q.Get("status"),
	}
	sortBy := q.Get("sort")
	if sortBy == "" {
		sortBy = dueset.SortNextDueDate
	}

	filtered := dueset.Apply(problems, filter, sortBy, now)
	respondJSON(w, http.StatusOK, toProblemResponses(filtered))
}

// getProblem returns one problem with its attempt history.
// @Summary      Get a problem
// @Description  Returns a problem with its attempts, newest first.
// @Tags         Problems
// @Produce      json
// @Param        problemID  path      string  true  "Problem ID"
// @Success      200        {object}  ProblemWithAttemptsResponse
// @Failure      404        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /api/problems/{problemID} [get]
func (h *Handler) getProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	p, err := h.store.GetProblem(ctx, problemID)
	if h.handleStoreError(w, err, "problem") {
		return
	}

	attempts, err := h.store.ListAttemptsByProblem(ctx, problemID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load attempts")
		return
	}

	respondJSON(w, http.StatusOK, ProblemWithAttemptsResponse{
		ProblemResponse: toProblemResponse(p),
		Attempts:        toAttemptResponses(attempts),
	})
}

// updateProblem edits descriptive fields. Scheduling state is owned by
// the attempt and postpone operations and is never written here.
// @Summary      Update a problem
// @Description  Update title, platform, URL, difficulty, tags or notes. Scheduling fields are untouched.
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        problemID  path      string                true  "Problem ID"
// @Param        body       body      UpdateProblemRequest  true  "Fields to update"
// @Success      200        {object}  ProblemResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/problems/{problemID} [put]
func (h *Handler) updateProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	var req UpdateProblemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.store.GetProblem(ctx, problemID)
	if h.handleStoreError(w, err, "problem") {
		return
	}

	var difficulty *problem.Difficulty
	if req.Difficulty != nil {
		d, err := problem.ParseDifficulty(*req.Difficulty)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		difficulty = &d
	}

	now := h.clock.Now()
	if err := p.UpdateDetails(req.Title, req.Platform, req.URL, req.URL != nil, difficulty, req.Tags, now); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.NotesTrick != nil || req.NotesMistakes != nil || req.NotesEdgeCases != nil {
		notes := p.Notes
		if req.NotesTrick != nil {
			notes.Trick = emptyToNil(req.NotesTrick)
		}
		if req.NotesMistakes != nil {
			notes.Mistakes = emptyToNil(req.NotesMistakes)
		}
		if req.NotesEdgeCases != nil {
			notes.EdgeCases = emptyToNil(req.NotesEdgeCases)
		}
		p.UpdateNotes(notes, now)
	}

	if h.handleStoreError(w, h.store.UpdateProblemDetails(ctx, p), "problem") {
		return
	}

	respondJSON(w, http.StatusOK, toProblemResponse(p))
}

// updateProblemNotes replaces the study notes for a problem.
// @Summary      Update problem notes
// @Description  Replace the trick / mistakes / edge-case notes. Omitted fields are cleared.
// @Tags         Problems
// @Accept       json
// @Produce      json
// @Param        problemID  path      string              true  "Problem ID"
// @Param        body       body      UpdateNotesRequest  true  "Notes"
// @Success      200        {object}  ProblemResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/problems/{problemID}/notes [patch]
func (h *Handler) updateProblemNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	var req UpdateNotesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.store.GetProblem(ctx, problemID)
	if h.handleStoreError(w, err, "problem") {
		return
	}

	p.UpdateNotes(problem.Notes{
		Trick:     emptyToNil(req.Trick),
		Mistakes:  emptyToNil(req.Mistakes),
		EdgeCases: emptyToNil(req.EdgeCases),
	}, h.clock.Now())

	if h.handleStoreError(w, h.store.UpdateProblemDetails(ctx, p), "problem") {
		return
	}

	respondJSON(w, http.StatusOK, toProblemResponse(p))
}

// deleteProblem removes a problem and its attempt ledger.
// @Summary      Delete a problem
// @Description  Delete a problem and cascade-delete its attempts.
// @Tags         Problems
// @Param        problemID  path  string  true  "Problem ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/problems/{problemID} [delete]
func (h *Handler) deleteProblem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problemID := r.PathValue("problemID")

	if h.handleStoreError(w, h.store.DeleteProblem(ctx, problemID), "problem") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
