// Package dueset classifies and orders problems relative to a
// caller-supplied "now" for review-session and library views. It holds
// no state of its own; every function is a pure view over the problem
// collection.
package dueset

import (
	"sort"
	"strings"
	"time"

	"github.com/leetreview/backend/internal/domain/problem"
)

// DueSoonHorizon is how far ahead the "due soon" bucket looks.
const DueSoonHorizon = 7 * 24 * time.Hour

// Status filters accepted by Filter.Status.
const (
	StatusOverdue  = "overdue"
	StatusDueSoon  = "due_soon"
	StatusMastered = "mastered"
)

// Sort orders accepted by Apply.
const (
	SortNextDueDate   = "next_due_date"
	SortLastAttempted = "last_attempted"
	SortDifficulty    = "difficulty"
	SortCreatedAt     = "created_at"
)

// Partition buckets a problem collection against now.
//
// Boundary semantics: "due today" includes everything with
// next_due_date <= end of now's calendar day, so it subsumes overdue.
// "New" is attempt-count based and independent of the due date.
type Partition struct {
	Overdue  []*problem.Problem // next_due_date strictly before now
	DueToday []*problem.Problem // next_due_date <= end of today
	DueSoon  []*problem.Problem // due within 7 days, not already due
	New      []*problem.Problem // never attempted
	Mastered []*problem.Problem // stage 5 with no due urgency
}

// EndOfDay returns the last nanosecond of now's calendar day.
func EndOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
}

// StartOfDay returns midnight of now's calendar day.
func StartOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Classify computes the partition for one evaluation instant.
func Classify(problems []*problem.Problem, now time.Time) Partition {
	endOfToday := EndOfDay(now)
	horizon := now.Add(DueSoonHorizon)

	var part Partition
	for _, p := range problems {
		if p.NextDueDate.Before(now) {
			part.Overdue = append(part.Overdue, p)
		}
		if !p.NextDueDate.After(endOfToday) {
			part.DueToday = append(part.DueToday, p)
		} else if !p.NextDueDate.After(horizon) {
			part.DueSoon = append(part.DueSoon, p)
		}
		if !p.Attempted() {
			part.New = append(part.New, p)
		}
		if IsMastered(p, now) {
			part.Mastered = append(part.Mastered, p)
		}
	}
	return part
}

// IsMastered reports whether a problem is at the top stage with no due
// urgency. Mastered problems still recur; this is a stats/filter
// bucket, not an exclusion from scheduling.
func IsMastered(p *problem.Problem, now time.Time) bool {
	return p.MasteryStage == 5 && p.NextDueDate.After(now.Add(DueSoonHorizon))
}

// DuePool returns the problems for a review session: everything due by
// end of today, soonest first.
func DuePool(problems []*problem.Problem, now time.Time) []*problem.Problem {
	endOfToday := EndOfDay(now)
	var due []*problem.Problem
	for _, p := range problems {
		if !p.NextDueDate.After(endOfToday) {
			due = append(due, p)
		}
	}
	SortProblems(due, SortNextDueDate)
	return due
}

// NewPool returns up to limit never-attempted problems, newest first,
// excluding any already surfaced in the due pool.
func NewPool(problems []*problem.Problem, due []*problem.Problem, limit int) []*problem.Problem {
	inDue := make(map[string]bool, len(due))
	for _, p := range due {
		inDue[p.ID] = true
	}

	var fresh []*problem.Problem
	for _, p := range problems {
		if !p.Attempted() && !inDue[p.ID] {
			fresh = append(fresh, p)
		}
	}
	SortProblems(fresh, SortCreatedAt)
	if limit > 0 && len(fresh) > limit {
		fresh = fresh[:limit]
	}
	return fresh
}

// Filter holds combinable listing predicates. Zero values mean "no
// constraint"; any filter composes with any sort.
type Filter struct {
	Search     string // case-insensitive substring on title
	Difficulty string // exact difficulty match
	Tag        string // exact tag match
	Status     string // overdue | due_soon | mastered
}

// Apply filters then sorts a problem collection. The input slice is not
// modified.
func Apply(problems []*problem.Problem, f Filter, sortBy string, now time.Time) []*problem.Problem {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	difficulty := strings.ToUpper(strings.TrimSpace(f.Difficulty))
	tag := strings.ToLower(strings.TrimSpace(f.Tag))
	horizon := now.Add(DueSoonHorizon)

	out := make([]*problem.Problem, 0, len(problems))
	for _, p := range problems {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if difficulty != "" && string(p.Difficulty) != difficulty {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		switch f.Status {
		case StatusOverdue:
			if !p.NextDueDate.Before(now) {
				continue
			}
		case StatusDueSoon:
			if p.NextDueDate.Before(now) || p.NextDueDate.After(horizon) {
				continue
			}
		case StatusMastered:
			if !IsMastered(p, now) {
				continue
			}
		}
		out = append(out, p)
	}

	SortProblems(out, sortBy)
	return out
}

// SortProblems orders problems in place. All orders are deterministic:
// ties break on id.
//
//	next_due_date:  soonest due first (default)
//	last_attempted: most recent first, never-attempted last
//	difficulty:     EASY < MEDIUM < HARD
//	created_at:     newest first
func SortProblems(problems []*problem.Problem, sortBy string) {
	less := func(a, b *problem.Problem) bool { return a.NextDueDate.Before(b.NextDueDate) }

	switch sortBy {
	case SortLastAttempted:
		less = func(a, b *problem.Problem) bool {
			switch {
			case a.LastAttemptedAt == nil && b.LastAttemptedAt == nil:
				return false
			case a.LastAttemptedAt == nil:
				return false
			case b.LastAttemptedAt == nil:
				return true
			}
			return a.LastAttemptedAt.After(*b.LastAttemptedAt)
		}
	case SortDifficulty:
		less = func(a, b *problem.Problem) bool { return a.Difficulty.Rank() < b.Difficulty.Rank() }
	case SortCreatedAt:
		less = func(a, b *problem.Problem) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(problems, func(i, j int) bool {
		a, b := problems[i], problems[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID < b.ID
	})
}

func hasTag(p *problem.Problem, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
