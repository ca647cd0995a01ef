package schedule_test

import (
	"testing"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/domain/schedule"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProblem(t *testing.T) *problem.Problem {
	t.Helper()
	p, err := problem.New("Two Sum", nil, "", problem.DifficultyEasy, []string{"array"}, problem.Notes{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestPassAdvancesStage(t *testing.T) {
	p := newProblem(t)

	a, err := schedule.Apply(p, attempt.OutcomePass, nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MasteryStage != 1 {
		t.Errorf("expected stage 1, got %d", p.MasteryStage)
	}
	if p.IntervalDays != 3 {
		t.Errorf("expected interval 3, got %d", p.IntervalDays)
	}
	if p.ConsecutiveSuccesses != 1 {
		t.Errorf("expected 1 consecutive success, got %d", p.ConsecutiveSuccesses)
	}
	if want := now.AddDate(0, 0, 3); !p.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, p.NextDueDate)
	}
	if a.StageBefore != 0 || a.StageAfter != 1 {
		t.Errorf("expected stage transition 0->1, got %d->%d", a.StageBefore, a.StageAfter)
	}
}

func TestPassLadderProgression(t *testing.T) {
	p := newProblem(t)

	wantIntervals := []int{3, 7, 14, 30, 60, 120}
	wantStages := []int{1, 2, 3, 4, 5, 5}

	at := now
	for i := range wantIntervals {
		if _, err := schedule.Apply(p, attempt.OutcomePass, nil, nil, at); err != nil {
			t.Fatalf("pass %d: unexpected error: %v", i+1, err)
		}
		if p.IntervalDays != wantIntervals[i] {
			t.Errorf("pass %d: expected interval %d, got %d", i+1, wantIntervals[i], p.IntervalDays)
		}
		if p.MasteryStage != wantStages[i] {
			t.Errorf("pass %d: expected stage %d, got %d", i+1, wantStages[i], p.MasteryStage)
		}
		at = p.NextDueDate
	}
}

func TestPassIntervalStrictlyGrows(t *testing.T) {
	p := newProblem(t)

	prior := p.IntervalDays
	for i := 0; i < 12; i++ {
		if _, err := schedule.Apply(p, attempt.OutcomePass, nil, nil, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.IntervalDays <= prior && p.IntervalDays != schedule.MaxInterval {
			t.Fatalf("pass %d: interval %d did not grow past %d", i+1, p.IntervalDays, prior)
		}
		prior = p.IntervalDays
	}
}

func TestPassIntervalCapped(t *testing.T) {
	p := newProblem(t)
	p.MasteryStage = 5
	p.IntervalDays = 365

	if _, err := schedule.Apply(p, attempt.OutcomePass, nil, nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.IntervalDays != 365 {
		t.Errorf("expected interval to hold at 365, got %d", p.IntervalDays)
	}
	if p.MasteryStage != 5 {
		t.Errorf("expected stage to hold at 5, got %d", p.MasteryStage)
	}
}

func TestShakyHalvesInterval(t *testing.T) {
	p := newProblem(t)
	p.MasteryStage = 3
	p.IntervalDays = 14
	p.ConsecutiveSuccesses = 3

	if _, err := schedule.Apply(p, attempt.OutcomeShaky, nil, nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MasteryStage != 3 {
		t.Errorf("expected stage unchanged at 3, got %d", p.MasteryStage)
	}
	if p.IntervalDays != 7 {
		t.Errorf("expected interval 7, got %d", p.IntervalDays)
	}
	if p.ConsecutiveSuccesses != 0 {
		t.Errorf("expected streak reset, got %d", p.ConsecutiveSuccesses)
	}
	if want := now.AddDate(0, 0, 7); !p.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, p.NextDueDate)
	}
}

func TestShakyIntervalFloorsAtOneDay(t *testing.T) {
	p := newProblem(t)

	if _, err := schedule.Apply(p, attempt.OutcomeShaky, nil, nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", p.IntervalDays)
	}
}

func TestFailResetsToStageZero(t *testing.T) {
	p := newProblem(t)
	p.MasteryStage = 4
	p.IntervalDays = 30
	p.ConsecutiveSuccesses = 4

	a, err := schedule.Apply(p, attempt.OutcomeFail, nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MasteryStage != 0 {
		t.Errorf("expected stage 0, got %d", p.MasteryStage)
	}
	if p.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", p.IntervalDays)
	}
	if p.ConsecutiveSuccesses != 0 {
		t.Errorf("expected streak reset, got %d", p.ConsecutiveSuccesses)
	}
	if want := now.AddDate(0, 0, 1); !p.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, p.NextDueDate)
	}
	if a.StageBefore != 4 || a.StageAfter != 0 {
		t.Errorf("expected stage transition 4->0, got %d->%d", a.StageBefore, a.StageAfter)
	}
}

func TestSkipLeavesSchedulingUntouched(t *testing.T) {
	p := newProblem(t)
	p.MasteryStage = 2
	p.IntervalDays = 7
	p.ConsecutiveSuccesses = 2
	due := now.AddDate(0, 0, -3)
	p.NextDueDate = due

	a, err := schedule.Apply(p, attempt.OutcomeSkip, nil, nil, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MasteryStage != 2 || p.IntervalDays != 7 || p.ConsecutiveSuccesses != 2 {
		t.Errorf("expected scheduling untouched, got stage=%d interval=%d streak=%d",
			p.MasteryStage, p.IntervalDays, p.ConsecutiveSuccesses)
	}
	if !p.NextDueDate.Equal(due) {
		t.Errorf("expected due date unchanged, got %v", p.NextDueDate)
	}
	if p.LastOutcome == nil || *p.LastOutcome != "SKIP" {
		t.Errorf("expected last outcome SKIP, got %v", p.LastOutcome)
	}
	if a.Outcome != attempt.OutcomeSkip {
		t.Errorf("expected SKIP ledger record, got %s", a.Outcome)
	}
}

func TestRepeatedSkipsNeverAdvanceDueDate(t *testing.T) {
	p := newProblem(t)
	due := p.NextDueDate

	at := now
	for i := 0; i < 5; i++ {
		at = at.Add(24 * time.Hour)
		if _, err := schedule.Apply(p, attempt.OutcomeSkip, nil, nil, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !p.NextDueDate.Equal(due) {
		t.Errorf("expected due date pinned at %v, got %v", due, p.NextDueDate)
	}
}

func TestPostponeFromOverdue(t *testing.T) {
	p := newProblem(t)
	p.NextDueDate = now.AddDate(0, 0, -5)

	a, err := schedule.Postpone(p, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := now.Add(24 * time.Hour); !p.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, p.NextDueDate)
	}
	if a.Outcome != attempt.OutcomePostpone {
		t.Errorf("expected POSTPONE record, got %s", a.Outcome)
	}
}

func TestPostponeFromFutureDueDate(t *testing.T) {
	p := newProblem(t)
	future := now.AddDate(0, 0, 2)
	p.NextDueDate = future

	if _, err := schedule.Postpone(p, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := future.Add(24 * time.Hour); !p.NextDueDate.Equal(want) {
		t.Errorf("expected due %v, got %v", want, p.NextDueDate)
	}
}

func TestPostponeLeavesStageAndInterval(t *testing.T) {
	p := newProblem(t)
	p.MasteryStage = 3
	p.IntervalDays = 14
	p.ConsecutiveSuccesses = 3

	if _, err := schedule.Postpone(p, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.MasteryStage != 3 || p.IntervalDays != 14 || p.ConsecutiveSuccesses != 3 {
		t.Errorf("expected stage/interval/streak untouched, got %d/%d/%d",
			p.MasteryStage, p.IntervalDays, p.ConsecutiveSuccesses)
	}
}

func TestApplyRejectsPostpone(t *testing.T) {
	p := newProblem(t)

	if _, err := schedule.Apply(p, attempt.OutcomePostpone, nil, nil, now); err == nil {
		t.Error("expected error for POSTPONE via Apply, got nil")
	}
}

func TestApplyRejectsUnknownOutcome(t *testing.T) {
	p := newProblem(t)

	if _, err := schedule.Apply(p, attempt.Outcome("MAYBE"), nil, nil, now); err == nil {
		t.Error("expected error for unknown outcome, got nil")
	}
}

func TestReplayReproducesSchedulingState(t *testing.T) {
	outcomes := []attempt.Outcome{
		attempt.OutcomePass,
		attempt.OutcomePass,
		attempt.OutcomeShaky,
		attempt.OutcomeFail,
		attempt.OutcomePass,
		attempt.OutcomeSkip,
	}

	p1 := newProblem(t)
	p2 := newProblem(t)

	at := now
	for _, o := range outcomes {
		at = at.Add(24 * time.Hour)
		if _, err := schedule.Apply(p1, o, nil, nil, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	at = now
	for _, o := range outcomes {
		at = at.Add(24 * time.Hour)
		if _, err := schedule.Apply(p2, o, nil, nil, at); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if p1.MasteryStage != p2.MasteryStage || p1.IntervalDays != p2.IntervalDays ||
		!p1.NextDueDate.Equal(p2.NextDueDate) || p1.ConsecutiveSuccesses != p2.ConsecutiveSuccesses {
		t.Errorf("replay diverged: %+v vs %+v", p1, p2)
	}
}

func TestStageInterval(t *testing.T) {
	cases := []struct {
		stage int
		want  int
	}{
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{5, 60},
		{-1, 1},
		{9, 60},
	}

	for _, c := range cases {
		if got := schedule.StageInterval(c.stage); got != c.want {
			t.Errorf("StageInterval(%d): expected %d, got %d", c.stage, c.want, got)
		}
	}
}

func TestStageLabel(t *testing.T) {
	cases := []struct {
		stage int
		want  string
	}{
		{0, "New"},
		{1, "Learning"},
		{2, "Familiar"},
		{3, "Comfortable"},
		{4, "Proficient"},
		{5, "Mastered"},
		{7, "Unknown"},
	}

	for _, c := range cases {
		if got := schedule.StageLabel(c.stage); got != c.want {
			t.Errorf("StageLabel(%d): expected %q, got %q", c.stage, c.want, got)
		}
	}
}
