package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/leetreview/backend/internal/clock"
	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/service"
	"github.com/leetreview/backend/internal/store"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// memoryStore is an in-memory Store for exercising the scheduler
// without a database.
type memoryStore struct {
	mu       sync.Mutex
	problems map[string]*problem.Problem
	attempts []*attempt.Attempt
}

func newMemoryStore() *memoryStore {
	return &memoryStore{problems: make(map[string]*problem.Problem)}
}

func (m *memoryStore) SaveProblem(_ context.Context, p *problem.Problem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.problems[p.ID] = &cp
	return nil
}

func (m *memoryStore) GetProblem(_ context.Context, id string) (*problem.Problem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.problems[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryStore) ListProblems(_ context.Context) ([]*problem.Problem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*problem.Problem, 0, len(m.problems))
	for _, p := range m.problems {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryStore) UpdateProblemDetails(_ context.Context, p *problem.Problem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.problems[p.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	m.problems[p.ID] = &cp
	return nil
}

func (m *memoryStore) DeleteProblem(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.problems[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.problems, id)
	return nil
}

func (m *memoryStore) ApplyAttempt(_ context.Context, p *problem.Problem, a *attempt.Attempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.problems[p.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	m.problems[p.ID] = &cp
	ca := *a
	m.attempts = append(m.attempts, &ca)
	return nil
}

func (m *memoryStore) ListAttemptsByProblem(_ context.Context, problemID string) ([]*attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*attempt.Attempt
	for _, a := range m.attempts {
		if a.ProblemID == problemID {
			ca := *a
			out = append(out, &ca)
		}
	}
	return out, nil
}

func (m *memoryStore) ListAllAttempts(_ context.Context) ([]*attempt.Attempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*attempt.Attempt, 0, len(m.attempts))
	for _, a := range m.attempts {
		ca := *a
		out = append(out, &ca)
	}
	return out, nil
}

func (m *memoryStore) ListHistory(_ context.Context, _ store.HistoryFilter) ([]store.HistoryEntry, int, error) {
	return nil, 0, nil
}

func newScheduler(s store.Store, at time.Time) *service.Scheduler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewScheduler(s, clock.Fixed{T: at}, logger)
}

func seedProblem(t *testing.T, s *memoryStore) *problem.Problem {
	t.Helper()
	p, err := problem.New("Two Sum", nil, "", problem.DifficultyEasy, []string{"array"}, problem.Notes{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SaveProblem(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestRecordAttemptPersistsProblemAndLedger(t *testing.T) {
	ms := newMemoryStore()
	p := seedProblem(t, ms)
	sch := newScheduler(ms, now)

	updated, a, err := sch.RecordAttempt(context.Background(), p.ID, attempt.OutcomePass, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.MasteryStage != 1 {
		t.Errorf("expected stage 1, got %d", updated.MasteryStage)
	}
	if !a.NextDueDateAfter.Equal(updated.NextDueDate) {
		t.Errorf("expected ledger due %v to match problem due %v", a.NextDueDateAfter, updated.NextDueDate)
	}

	stored, err := ms.GetProblem(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.MasteryStage != 1 {
		t.Errorf("expected persisted stage 1, got %d", stored.MasteryStage)
	}

	ledger, _ := ms.ListAttemptsByProblem(context.Background(), p.ID)
	if len(ledger) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(ledger))
	}
}

func TestRecordAttemptRejectsBadInputBeforeStateChanges(t *testing.T) {
	ms := newMemoryStore()
	p := seedProblem(t, ms)
	sch := newScheduler(ms, now)

	if _, _, err := sch.RecordAttempt(context.Background(), p.ID, attempt.Outcome("MAYBE"), nil, nil); err == nil {
		t.Error("expected error for unknown outcome, got nil")
	}
	if _, _, err := sch.RecordAttempt(context.Background(), p.ID, attempt.OutcomePostpone, nil, nil); err == nil {
		t.Error("expected error for POSTPONE outcome, got nil")
	}
	zero := 0
	if _, _, err := sch.RecordAttempt(context.Background(), p.ID, attempt.OutcomePass, &zero, nil); err == nil {
		t.Error("expected error for non-positive time spent, got nil")
	}

	stored, _ := ms.GetProblem(context.Background(), p.ID)
	if stored.MasteryStage != 0 || stored.Attempted() {
		t.Error("expected problem untouched after rejected attempts")
	}
	ledger, _ := ms.ListAttemptsByProblem(context.Background(), p.ID)
	if len(ledger) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(ledger))
	}
}

func TestRecordAttemptUnknownProblem(t *testing.T) {
	ms := newMemoryStore()
	sch := newScheduler(ms, now)

	_, _, err := sch.RecordAttempt(context.Background(), "missing", attempt.OutcomePass, nil, nil)
	if err != store.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostponePushesDueDateAndLogs(t *testing.T) {
	ms := newMemoryStore()
	p := seedProblem(t, ms)
	sch := newScheduler(ms, now)

	updated, a, err := sch.Postpone(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := now.Add(24 * time.Hour); !updated.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, updated.NextDueDate)
	}
	if a.Outcome != attempt.OutcomePostpone {
		t.Errorf("expected POSTPONE ledger entry, got %s", a.Outcome)
	}
	if updated.MasteryStage != 0 || updated.IntervalDays != 1 {
		t.Error("expected mastery state untouched by postpone")
	}
}

func TestConcurrentAttemptsOnSameProblemSerialize(t *testing.T) {
	ms := newMemoryStore()
	p := seedProblem(t, ms)
	sch := newScheduler(ms, now)

	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, _, err := sch.RecordAttempt(context.Background(), p.ID, attempt.OutcomePass, nil, nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	ledger, _ := ms.ListAttemptsByProblem(context.Background(), p.ID)
	if len(ledger) != n {
		t.Fatalf("expected %d ledger entries, got %d", n, len(ledger))
	}

	stored, _ := ms.GetProblem(context.Background(), p.ID)
	if stored.ConsecutiveSuccesses != n {
		t.Errorf("expected %d consecutive successes, got %d", n, stored.ConsecutiveSuccesses)
	}
	if stored.MasteryStage != 5 {
		t.Errorf("expected stage capped at 5, got %d", stored.MasteryStage)
	}
}
