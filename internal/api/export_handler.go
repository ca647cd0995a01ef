package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/domain/schedule"
	"github.com/leetreview/backend/internal/id"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportAttempt struct {
	Outcome          string    `json:"outcome"`
	StageBefore      int       `json:"stage_before"`
	StageAfter       int       `json:"stage_after"`
	NextDueDateAfter time.Time `json:"next_due_date_after"`
	TimeSpentMinutes *int      `json:"time_spent_minutes,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	AttemptedAt      time.Time `json:"attempted_at"`
}

type ExportProblem struct {
	Title                string          `json:"title"`
	Platform             string          `json:"platform"`
	URL                  *string         `json:"url,omitempty"`
	Difficulty           string          `json:"difficulty"`
	Tags                 []string        `json:"tags"`
	NotesTrick           *string         `json:"notes_trick,omitempty"`
	NotesMistakes        *string         `json:"notes_mistakes,omitempty"`
	NotesEdgeCases       *string         `json:"notes_edge_cases,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	MasteryStage         int             `json:"mastery_stage"`
	IntervalDays         int             `json:"interval_days"`
	NextDueDate          time.Time       `json:"next_due_date"`
	ConsecutiveSuccesses int             `json:"consecutive_successes"`
	LastOutcome          *string         `json:"last_outcome,omitempty"`
	LastAttemptedAt      *time.Time      `json:"last_attempted_at,omitempty"`
	Attempts             []ExportAttempt `json:"attempts"`
}

type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Problems   []ExportProblem `json:"problems"`
}

type ImportResult struct {
	ProblemsCreated int `json:"problems_created"`
	AttemptsCreated int `json:"attempts_created"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll dumps all problems with their scheduling state and attempts.
// @Summary      Export everything
// @Description  Download all problems, their scheduling state, and their attempt history as a single JSON document.
// @Tags         Transfer
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /api/export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	problems, err := h.store.ListProblems(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load problems")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: h.clock.Now().Format(time.RFC3339),
		Problems:   make([]ExportProblem, 0, len(problems)),
	}

	for _, p := range problems {
		attempts, err := h.store.ListAttemptsByProblem(ctx, p.ID)
		if err != nil {
			continue
		}

		exportProblem := ExportProblem{
			Title:                p.Title,
			Platform:             p.Platform,
			URL:                  p.URL,
			Difficulty:           string(p.Difficulty),
			Tags:                 p.Tags,
			NotesTrick:           p.Notes.Trick,
			NotesMistakes:        p.Notes.Mistakes,
			NotesEdgeCases:       p.Notes.EdgeCases,
			CreatedAt:            p.CreatedAt,
			MasteryStage:         p.MasteryStage,
			IntervalDays:         p.IntervalDays,
			NextDueDate:          p.NextDueDate,
			ConsecutiveSuccesses: p.ConsecutiveSuccesses,
			LastOutcome:          p.LastOutcome,
			LastAttemptedAt:      p.LastAttemptedAt,
			Attempts:             make([]ExportAttempt, len(attempts)),
		}

		for i, a := range attempts {
			exportProblem.Attempts[i] = ExportAttempt{
				Outcome:          string(a.Outcome),
				StageBefore:      a.StageBefore,
				StageAfter:       a.StageAfter,
				NextDueDateAfter: a.NextDueDateAfter,
				TimeSpentMinutes: a.TimeSpentMinutes,
				Notes:            a.Notes,
				AttemptedAt:      a.AttemptedAt,
			}
		}

		exportData.Problems = append(exportData.Problems, exportProblem)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=leetreview-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll recreates problems and attempts from an export document.
// @Summary      Import an export
// @Description  Recreate problems and their attempt history from a previously exported document. Imported problems get fresh ids.
// @Tags         Transfer
// @Accept       json
// @Produce      json
// @Param        body  body  ExportData  true  "Export document"
// @Success      201  {object}  ImportResult
// @Failure      400  {object}  map[string]string
// @Router       /api/import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	now := h.clock.Now()
	result := ImportResult{}

	for _, ep := range importData.Problems {
		difficulty, err := problem.ParseDifficulty(ep.Difficulty)
		if err != nil {
			h.logger.Error("skipping problem with bad difficulty", "title", ep.Title, "difficulty", ep.Difficulty)
			continue
		}
		if ep.MasteryStage < schedule.MinStage || ep.MasteryStage > schedule.MaxStage ||
			ep.IntervalDays < schedule.MinInterval || ep.IntervalDays > schedule.MaxInterval ||
			ep.ConsecutiveSuccesses < 0 {
			h.logger.Error("skipping problem with invalid scheduling state",
				"title", ep.Title, "stage", ep.MasteryStage, "interval_days", ep.IntervalDays)
			continue
		}

		notes := problem.Notes{
			Trick:     ep.NotesTrick,
			Mistakes:  ep.NotesMistakes,
			EdgeCases: ep.NotesEdgeCases,
		}
		p, err := problem.New(ep.Title, ep.URL, ep.Platform, difficulty, ep.Tags, notes, now)
		if err != nil {
			h.logger.Error("skipping invalid problem", "title", ep.Title, "error", err)
			continue
		}
		if !ep.CreatedAt.IsZero() {
			p.CreatedAt = ep.CreatedAt
		}
		p.MasteryStage = ep.MasteryStage
		p.IntervalDays = ep.IntervalDays
		if !ep.NextDueDate.IsZero() {
			p.NextDueDate = ep.NextDueDate
		}
		p.ConsecutiveSuccesses = ep.ConsecutiveSuccesses
		p.LastOutcome = ep.LastOutcome
		p.LastAttemptedAt = ep.LastAttemptedAt

		if err := h.store.SaveProblem(ctx, p); err != nil {
			h.logger.Error("failed to create problem", "title", ep.Title, "error", err)
			continue
		}
		result.ProblemsCreated++

		for _, ea := range ep.Attempts {
			outcome, err := attempt.ParseOutcome(ea.Outcome)
			if err != nil {
				h.logger.Error("skipping attempt with bad outcome", "problem", p.Title, "outcome", ea.Outcome)
				continue
			}
			a := &attempt.Attempt{
				ID:               id.GenerateID(),
				ProblemID:        p.ID,
				Outcome:          outcome,
				StageBefore:      ea.StageBefore,
				StageAfter:       ea.StageAfter,
				NextDueDateAfter: ea.NextDueDateAfter,
				TimeSpentMinutes: ea.TimeSpentMinutes,
				Notes:            ea.Notes,
				AttemptedAt:      ea.AttemptedAt,
			}
			if err := h.store.ApplyAttempt(ctx, p, a); err != nil {
				h.logger.Error("failed to save attempt", "problem", p.Title, "error", err)
				continue
			}
			result.AttemptsCreated++
		}
	}

	respondJSON(w, http.StatusCreated, result)
}
