package dueset_test

import (
	"testing"
	"time"

	"github.com/leetreview/backend/internal/domain/dueset"
	"github.com/leetreview/backend/internal/domain/problem"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newProblem(t *testing.T, title string, difficulty problem.Difficulty, tags []string, createdAt time.Time) *problem.Problem {
	t.Helper()
	p, err := problem.New(title, nil, "", difficulty, tags, problem.Notes{}, createdAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func attempted(p *problem.Problem, at time.Time, due time.Time) *problem.Problem {
	o := "PASS"
	p.LastOutcome = &o
	p.LastAttemptedAt = &at
	p.NextDueDate = due
	return p
}

func TestDuePoolIncludesOverdueAndDueToday(t *testing.T) {
	overdue := attempted(newProblem(t, "Overdue", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -3), now.AddDate(0, 0, -2))
	dueLater := attempted(newProblem(t, "Due Tonight", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -1), now.Add(5*time.Hour))
	tomorrow := attempted(newProblem(t, "Tomorrow", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))

	due := dueset.DuePool([]*problem.Problem{tomorrow, dueLater, overdue}, now)

	if len(due) != 2 {
		t.Fatalf("expected 2 due problems, got %d", len(due))
	}
	if due[0].Title != "Overdue" || due[1].Title != "Due Tonight" {
		t.Errorf("expected soonest-first order, got %q then %q", due[0].Title, due[1].Title)
	}
}

func TestDuePoolEndOfDayBoundary(t *testing.T) {
	lastSecond := attempted(newProblem(t, "Last Second", problem.DifficultyEasy, nil, now.AddDate(0, 0, -1)), now, dueset.EndOfDay(now))
	firstOfTomorrow := attempted(newProblem(t, "Just After", problem.DifficultyEasy, nil, now.AddDate(0, 0, -1)), now, dueset.StartOfDay(now).AddDate(0, 0, 1))

	due := dueset.DuePool([]*problem.Problem{lastSecond, firstOfTomorrow}, now)

	if len(due) != 1 {
		t.Fatalf("expected 1 due problem, got %d", len(due))
	}
	if due[0].Title != "Last Second" {
		t.Errorf("expected %q, got %q", "Last Second", due[0].Title)
	}
}

func TestNewPoolExcludesAttemptedAndDue(t *testing.T) {
	fresh := newProblem(t, "Fresh", problem.DifficultyEasy, nil, now.Add(-time.Hour))
	older := newProblem(t, "Older Fresh", problem.DifficultyEasy, nil, now.Add(-2*time.Hour))
	tried := attempted(newProblem(t, "Tried", problem.DifficultyEasy, nil, now.AddDate(0, 0, -5)), now.AddDate(0, 0, -1), now.AddDate(0, 0, 2))

	all := []*problem.Problem{tried, older, fresh}
	due := dueset.DuePool(all, now)
	pool := dueset.NewPool(all, due, 5)

	// fresh problems are due immediately, so the due pool owns them
	for _, p := range pool {
		if p.Title == "Tried" {
			t.Error("attempted problem surfaced in new pool")
		}
	}
	for _, p := range due {
		for _, np := range pool {
			if p.ID == np.ID {
				t.Errorf("problem %q in both due and new pools", p.Title)
			}
		}
	}
}

func TestNewPoolNewestFirstWithLimit(t *testing.T) {
	var all []*problem.Problem
	for i := 0; i < 8; i++ {
		p := newProblem(t, "Fresh", problem.DifficultyEasy, nil, now.Add(time.Duration(-i)*time.Hour))
		// push due dates out so the new pool, not the due pool, owns them
		p.NextDueDate = now.AddDate(0, 0, 10)
		all = append(all, p)
	}

	pool := dueset.NewPool(all, nil, 5)

	if len(pool) != 5 {
		t.Fatalf("expected pool of 5, got %d", len(pool))
	}
	for i := 1; i < len(pool); i++ {
		if pool[i].CreatedAt.After(pool[i-1].CreatedAt) {
			t.Errorf("expected newest first, got %v before %v", pool[i-1].CreatedAt, pool[i].CreatedAt)
		}
	}
}

func TestClassifyBuckets(t *testing.T) {
	overdue := attempted(newProblem(t, "Overdue", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -2), now.AddDate(0, 0, -1))
	soon := attempted(newProblem(t, "Soon", problem.DifficultyMedium, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -1), now.AddDate(0, 0, 3))
	fresh := newProblem(t, "Fresh", problem.DifficultyEasy, nil, now)
	mastered := attempted(newProblem(t, "Mastered", problem.DifficultyHard, nil, now.AddDate(0, 0, -90)), now.AddDate(0, 0, -10), now.AddDate(0, 0, 50))
	mastered.MasteryStage = 5

	part := dueset.Classify([]*problem.Problem{overdue, soon, fresh, mastered}, now)

	if len(part.Overdue) != 1 || part.Overdue[0].Title != "Overdue" {
		t.Errorf("expected 1 overdue, got %d", len(part.Overdue))
	}
	// fresh problems are due at creation, so due-today holds both
	if len(part.DueToday) != 2 {
		t.Errorf("expected 2 due today, got %d", len(part.DueToday))
	}
	if len(part.DueSoon) != 1 || part.DueSoon[0].Title != "Soon" {
		t.Errorf("expected 1 due soon, got %d", len(part.DueSoon))
	}
	if len(part.New) != 1 || part.New[0].Title != "Fresh" {
		t.Errorf("expected 1 new, got %d", len(part.New))
	}
	if len(part.Mastered) != 1 || part.Mastered[0].Title != "Mastered" {
		t.Errorf("expected 1 mastered, got %d", len(part.Mastered))
	}
}

func TestIsMasteredRequiresQuietDueDate(t *testing.T) {
	p := attempted(newProblem(t, "Top Stage", problem.DifficultyHard, nil, now.AddDate(0, 0, -90)), now.AddDate(0, 0, -5), now.AddDate(0, 0, 2))
	p.MasteryStage = 5

	if dueset.IsMastered(p, now) {
		t.Error("stage 5 problem due within the horizon should not count as mastered")
	}

	p.NextDueDate = now.AddDate(0, 0, 30)
	if !dueset.IsMastered(p, now) {
		t.Error("stage 5 problem due far out should count as mastered")
	}
}

func TestFilterBySearchAndTag(t *testing.T) {
	a := newProblem(t, "Two Sum", problem.DifficultyEasy, []string{"array", "hash-map"}, now)
	b := newProblem(t, "Three Sum", problem.DifficultyMedium, []string{"array", "two-pointers"}, now)
	c := newProblem(t, "Valid Parentheses", problem.DifficultyEasy, []string{"stack"}, now)
	all := []*problem.Problem{a, b, c}

	got := dueset.Apply(all, dueset.Filter{Search: "sum"}, dueset.SortNextDueDate, now)
	if len(got) != 2 {
		t.Errorf("search: expected 2 results, got %d", len(got))
	}

	got = dueset.Apply(all, dueset.Filter{Tag: "stack"}, dueset.SortNextDueDate, now)
	if len(got) != 1 || got[0].Title != "Valid Parentheses" {
		t.Errorf("tag: expected Valid Parentheses, got %d results", len(got))
	}

	got = dueset.Apply(all, dueset.Filter{Search: "sum", Difficulty: "MEDIUM"}, dueset.SortNextDueDate, now)
	if len(got) != 1 || got[0].Title != "Three Sum" {
		t.Errorf("combined: expected Three Sum, got %d results", len(got))
	}
}

func TestFilterByStatus(t *testing.T) {
	overdue := attempted(newProblem(t, "Overdue", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -2), now.AddDate(0, 0, -1))
	upcoming := attempted(newProblem(t, "Upcoming", problem.DifficultyEasy, nil, now.AddDate(0, 0, -10)), now.AddDate(0, 0, -1), now.AddDate(0, 0, 3))
	all := []*problem.Problem{overdue, upcoming}

	got := dueset.Apply(all, dueset.Filter{Status: dueset.StatusOverdue}, dueset.SortNextDueDate, now)
	if len(got) != 1 || got[0].Title != "Overdue" {
		t.Errorf("expected only the overdue problem, got %d results", len(got))
	}

	got = dueset.Apply(all, dueset.Filter{Status: dueset.StatusDueSoon}, dueset.SortNextDueDate, now)
	if len(got) != 1 || got[0].Title != "Upcoming" {
		t.Errorf("expected only the upcoming problem, got %d results", len(got))
	}
}

func TestSortByDifficulty(t *testing.T) {
	hard := newProblem(t, "Hard One", problem.DifficultyHard, nil, now)
	easy := newProblem(t, "Easy One", problem.DifficultyEasy, nil, now)
	medium := newProblem(t, "Medium One", problem.DifficultyMedium, nil, now)

	got := dueset.Apply([]*problem.Problem{hard, easy, medium}, dueset.Filter{}, dueset.SortDifficulty, now)

	want := []string{"Easy One", "Medium One", "Hard One"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestSortByLastAttemptedPutsNeverAttemptedLast(t *testing.T) {
	fresh := newProblem(t, "Fresh", problem.DifficultyEasy, nil, now)
	recent := attempted(newProblem(t, "Recent", problem.DifficultyEasy, nil, now.AddDate(0, 0, -5)), now.Add(-time.Hour), now.AddDate(0, 0, 1))
	older := attempted(newProblem(t, "Older", problem.DifficultyEasy, nil, now.AddDate(0, 0, -5)), now.AddDate(0, 0, -2), now.AddDate(0, 0, 1))

	got := dueset.Apply([]*problem.Problem{fresh, older, recent}, dueset.Filter{}, dueset.SortLastAttempted, now)

	want := []string{"Recent", "Older", "Fresh"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestSortIsDeterministicOnTies(t *testing.T) {
	a := newProblem(t, "Same", problem.DifficultyEasy, nil, now)
	b := newProblem(t, "Same", problem.DifficultyEasy, nil, now)
	a.NextDueDate = now
	b.NextDueDate = now

	first := dueset.Apply([]*problem.Problem{a, b}, dueset.Filter{}, dueset.SortNextDueDate, now)
	second := dueset.Apply([]*problem.Problem{b, a}, dueset.Filter{}, dueset.SortNextDueDate, now)

	if first[0].ID != second[0].ID || first[1].ID != second[1].ID {
		t.Error("expected identical order regardless of input order")
	}
}
