// internal/service/scheduler.go
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leetreview/backend/internal/clock"
	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/domain/schedule"
	"github.com/leetreview/backend/internal/store"
)

// Scheduler runs the record-attempt and postpone operations. It owns
// the per-problem locks so two concurrent submissions for the same
// problem never read-modify-write stale state; operations on different
// problems proceed in parallel.
type Scheduler struct {
	store  store.Store
	clock  clock.Clock
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // problemID → lock
}

// NewScheduler creates a Scheduler.
func NewScheduler(s store.Store, c clock.Clock, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:  s,
		clock:  c,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// RecordAttempt applies one review outcome to a problem and appends
// the resulting attempt to the ledger. The operation is all-or-nothing:
// invalid input is rejected before any state is read, and the store
// persists the problem update and attempt insert in one transaction.
// POSTPONE is rejected here; it has its own operation.
func (sch *Scheduler) RecordAttempt(ctx context.Context, problemID string, outcome attempt.Outcome, timeSpent *int, notes *string) (*problem.Problem, *attempt.Attempt, error) {
	parsed, err := attempt.ParseOutcome(string(outcome))
	if err != nil {
		return nil, nil, err
	}
	if parsed == attempt.OutcomePostpone {
		return nil, nil, attempt.ErrInvalidOutcome
	}
	if timeSpent != nil && *timeSpent <= 0 {
		return nil, nil, attempt.ErrInvalidTimeSpent
	}

	unlock := sch.lockProblem(problemID)
	defer unlock()

	p, err := sch.store.GetProblem(ctx, problemID)
	if err != nil {
		return nil, nil, err
	}

	now := sch.clock.Now()
	a, err := schedule.Apply(p, parsed, timeSpent, notes, now)
	if err != nil {
		return nil, nil, err
	}

	if err := sch.store.ApplyAttempt(ctx, p, a); err != nil {
		return nil, nil, err
	}

	sch.logger.Info("attempt recorded",
		"problem_id", p.ID,
		"outcome", parsed,
		"stage", p.MasteryStage,
		"interval_days", p.IntervalDays,
		"next_due", p.NextDueDate,
	)
	return p, a, nil
}

// Postpone pushes a problem's due date forward without touching its
// mastery state. The move is still logged as an attempt so it shows up
// in history.
func (sch *Scheduler) Postpone(ctx context.Context, problemID string) (*problem.Problem, *attempt.Attempt, error) {
	unlock := sch.lockProblem(problemID)
	defer unlock()

	p, err := sch.store.GetProblem(ctx, problemID)
	if err != nil {
		return nil, nil, err
	}

	a, err := schedule.Postpone(p, sch.clock.Now())
	if err != nil {
		return nil, nil, err
	}

	if err := sch.store.ApplyAttempt(ctx, p, a); err != nil {
		return nil, nil, err
	}

	sch.logger.Info("problem postponed", "problem_id", p.ID, "next_due", p.NextDueDate)
	return p, a, nil
}

// lockProblem serializes operations on a single problem id and returns
// the unlock func.
func (sch *Scheduler) lockProblem(problemID string) func() {
	sch.mu.Lock()
	l, ok := sch.locks[problemID]
	if !ok {
		l = &sync.Mutex{}
		sch.locks[problemID] = l
	}
	sch.mu.Unlock()

	l.Lock()
	return l.Unlock
}
