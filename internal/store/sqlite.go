// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "modernc.org/sqlite"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
)

const schema = `
CREATE TABLE IF NOT EXISTS problems (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    platform TEXT NOT NULL DEFAULT 'LeetCode',
    url TEXT,
    difficulty TEXT NOT NULL,
    tags TEXT NOT NULL DEFAULT '[]',
    notes_trick TEXT,
    notes_mistakes TEXT,
    notes_edge_cases TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    mastery_stage INTEGER NOT NULL DEFAULT 0,
    interval_days INTEGER NOT NULL DEFAULT 1,
    next_due_date TIMESTAMP NOT NULL,
    consecutive_successes INTEGER NOT NULL DEFAULT 0,
    last_outcome TEXT,
    last_attempted_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    problem_id TEXT NOT NULL,
    outcome TEXT NOT NULL,
    stage_before INTEGER NOT NULL,
    stage_after INTEGER NOT NULL,
    next_due_date_after TIMESTAMP NOT NULL,
    time_spent_minutes INTEGER,
    notes TEXT,
    attempted_at TIMESTAMP NOT NULL,
    FOREIGN KEY (problem_id) REFERENCES problems(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_problems_next_due ON problems(next_due_date);
CREATE INDEX IF NOT EXISTS idx_attempts_problem ON attempts(problem_id);
CREATE INDEX IF NOT EXISTS idx_attempts_attempted_at ON attempts(attempted_at);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Problems
// ============================================================================

const problemColumns = `id, title, platform, url, difficulty, tags,
    notes_trick, notes_mistakes, notes_edge_cases,
    created_at, updated_at,
    mastery_stage, interval_days, next_due_date, consecutive_successes,
    last_outcome, last_attempted_at`

func (s *SQLiteStore) SaveProblem(ctx context.Context, p *problem.Problem) error {
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO problems (`+problemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Platform, p.URL, p.Difficulty, string(tagsJSON),
		p.Notes.Trick, p.Notes.Mistakes, p.Notes.EdgeCases,
		p.CreatedAt, p.UpdatedAt,
		p.MasteryStage, p.IntervalDays, p.NextDueDate, p.ConsecutiveSuccesses,
		p.LastOutcome, p.LastAttemptedAt,
	)
	return err
}

func (s *SQLiteStore) GetProblem(ctx context.Context, id string) (*problem.Problem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+problemColumns+` FROM problems WHERE id = ?`, id)

	p, err := scanProblem(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLiteStore) ListProblems(ctx context.Context) ([]*problem.Problem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+problemColumns+` FROM problems`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*problem.Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

// UpdateProblemDetails persists descriptive fields and notes. The
// scheduling columns are deliberately not written here; only
// ApplyAttempt touches those.
func (s *SQLiteStore) UpdateProblemDetails(ctx context.Context, p *problem.Problem) error {
	tagsJSON, err := json.Marshal(p.Tags)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE problems
		SET title = ?, platform = ?, url = ?, difficulty = ?, tags = ?,
		    notes_trick = ?, notes_mistakes = ?, notes_edge_cases = ?,
		    updated_at = ?
		WHERE id = ?`,
		p.Title, p.Platform, p.URL, p.Difficulty, string(tagsJSON),
		p.Notes.Trick, p.Notes.Mistakes, p.Notes.EdgeCases,
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteProblem(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Attempts are owned by the problem and go with it.
	if _, err := tx.ExecContext(ctx, "DELETE FROM attempts WHERE problem_id = ?", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM problems WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// ============================================================================
// Attempts
// ============================================================================

// ApplyAttempt writes the problem's new scheduling state and appends
// the attempt in one transaction, so a crash mid-operation leaves the
// problem unchanged.
func (s *SQLiteStore) ApplyAttempt(ctx context.Context, p *problem.Problem, a *attempt.Attempt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE problems
		SET mastery_stage = ?, interval_days = ?, next_due_date = ?,
		    consecutive_successes = ?, last_outcome = ?, last_attempted_at = ?,
		    updated_at = ?
		WHERE id = ?`,
		p.MasteryStage, p.IntervalDays, p.NextDueDate,
		p.ConsecutiveSuccesses, p.LastOutcome, p.LastAttemptedAt,
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO attempts (id, problem_id, outcome, stage_before, stage_after,
		    next_due_date_after, time_spent_minutes, notes, attempted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ProblemID, a.Outcome, a.StageBefore, a.StageAfter,
		a.NextDueDateAfter, a.TimeSpentMinutes, a.Notes, a.AttemptedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const attemptColumns = `id, problem_id, outcome, stage_before, stage_after,
    next_due_date_after, time_spent_minutes, notes, attempted_at`

func (s *SQLiteStore) ListAttemptsByProblem(ctx context.Context, problemID string) ([]*attempt.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+attemptColumns+` FROM attempts
		 WHERE problem_id = ? ORDER BY attempted_at DESC, id`, problemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttempts(rows)
}

func (s *SQLiteStore) ListAllAttempts(ctx context.Context) ([]*attempt.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+attemptColumns+` FROM attempts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttempts(rows)
}

// ListHistory returns attempts across all problems, newest first,
// enriched with problem title and difficulty, plus the total matching
// count before limit/offset.
func (s *SQLiteStore) ListHistory(ctx context.Context, f HistoryFilter) ([]HistoryEntry, int, error) {
	where := ""
	var args []any
	if f.Outcome != nil {
		where = " WHERE a.outcome = ?"
		args = append(args, string(*f.Outcome))
	}

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts a`+where, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `
		SELECT a.id, a.problem_id, a.outcome, a.stage_before, a.stage_after,
		       a.next_due_date_after, a.time_spent_minutes, a.notes, a.attempted_at,
		       p.title, p.difficulty
		FROM attempts a
		JOIN problems p ON p.id = a.problem_id` + where + `
		ORDER BY a.attempted_at DESC, a.id
		LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var a attempt.Attempt
		var entry HistoryEntry
		var timeSpent sql.NullInt64
		var notes sql.NullString
		if err := rows.Scan(
			&a.ID, &a.ProblemID, &a.Outcome, &a.StageBefore, &a.StageAfter,
			&a.NextDueDateAfter, &timeSpent, &notes, &a.AttemptedAt,
			&entry.ProblemTitle, &entry.ProblemDifficulty,
		); err != nil {
			return nil, 0, err
		}
		applyNullables(&a, timeSpent, notes)
		entry.Attempt = &a
		entries = append(entries, entry)
	}
	return entries, total, rows.Err()
}

// ============================================================================
// Scanning helpers
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (*problem.Problem, error) {
	var p problem.Problem
	var url, tagsJSON sql.NullString
	var trick, mistakes, edgeCases, lastOutcome sql.NullString
	var lastAttemptedAt sql.NullTime

	err := row.Scan(
		&p.ID, &p.Title, &p.Platform, &url, &p.Difficulty, &tagsJSON,
		&trick, &mistakes, &edgeCases,
		&p.CreatedAt, &p.UpdatedAt,
		&p.MasteryStage, &p.IntervalDays, &p.NextDueDate, &p.ConsecutiveSuccesses,
		&lastOutcome, &lastAttemptedAt,
	)
	if err != nil {
		return nil, err
	}

	if url.Valid {
		p.URL = &url.String
	}
	if tagsJSON.Valid && tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &p.Tags); err != nil {
			return nil, err
		}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if trick.Valid {
		p.Notes.Trick = &trick.String
	}
	if mistakes.Valid {
		p.Notes.Mistakes = &mistakes.String
	}
	if edgeCases.Valid {
		p.Notes.EdgeCases = &edgeCases.String
	}
	if lastOutcome.Valid {
		p.LastOutcome = &lastOutcome.String
	}
	if lastAttemptedAt.Valid {
		t := lastAttemptedAt.Time
		p.LastAttemptedAt = &t
	}
	return &p, nil
}

func collectAttempts(rows *sql.Rows) ([]*attempt.Attempt, error) {
	var attempts []*attempt.Attempt
	for rows.Next() {
		var a attempt.Attempt
		var timeSpent sql.NullInt64
		var notes sql.NullString
		if err := rows.Scan(
			&a.ID, &a.ProblemID, &a.Outcome, &a.StageBefore, &a.StageAfter,
			&a.NextDueDateAfter, &timeSpent, &notes, &a.AttemptedAt,
		); err != nil {
			return nil, err
		}
		applyNullables(&a, timeSpent, notes)
		attempts = append(attempts, &a)
	}
	return attempts, rows.Err()
}

func applyNullables(a *attempt.Attempt, timeSpent sql.NullInt64, notes sql.NullString) {
	if timeSpent.Valid {
		v := int(timeSpent.Int64)
		a.TimeSpentMinutes = &v
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
}
