// Package stats derives read-only rollups from the problem collection
// and the attempt ledger. Nothing here mutates state: two calls over
// the same snapshot and the same now yield identical output.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/dueset"
	"github.com/leetreview/backend/internal/domain/problem"
)

const (
	// WeakTagWindow is how far back attempts count toward tag fail rates.
	WeakTagWindow = 30 * 24 * time.Hour
	// WeakTagThreshold is the fail rate above which a tag is surfaced.
	WeakTagThreshold = 0.40
	// WeakTagMinAttempts guards tiny samples from dominating the list.
	WeakTagMinAttempts = 3
	// WeakTagLimit caps how many weak tags are reported.
	WeakTagLimit = 5
)

// TagStat is one weak tag with its failure rate over the window.
type TagStat struct {
	Tag           string
	TotalAttempts int
	FailRate      float64
}

// Summary is the dashboard rollup.
type Summary struct {
	TotalProblems      int
	DueToday           int
	Overdue            int
	AttemptsLast7Days  int
	AttemptsLast30Days int
	WeakTags           []TagStat
	// MasteryDistribution counts problems per stage 0..5, zeros included.
	MasteryDistribution [6]int
	// DifficultyDistribution covers all three difficulties, zeros included.
	DifficultyDistribution map[problem.Difficulty]int
}

// Compute builds the summary for one evaluation instant.
//
// Due counts use day boundaries, not the selector's instant: due_today
// is next_due_date <= end of today (subsuming overdue), while overdue
// is strictly before the start of today. The selector treats anything
// before now as overdue, so a problem due earlier the same day shows
// up overdue in the session but only as due here. Attempt windows are
// [now - N days, now], inclusive at the start.
func Compute(problems []*problem.Problem, attempts []*attempt.Attempt, now time.Time) Summary {
	s := Summary{
		TotalProblems:          len(problems),
		DifficultyDistribution: map[problem.Difficulty]int{problem.DifficultyEasy: 0, problem.DifficultyMedium: 0, problem.DifficultyHard: 0},
	}

	endOfToday := dueset.EndOfDay(now)
	startOfToday := dueset.StartOfDay(now)
	for _, p := range problems {
		if !p.NextDueDate.After(endOfToday) {
			s.DueToday++
		}
		if p.NextDueDate.Before(startOfToday) {
			s.Overdue++
		}
		if p.MasteryStage >= 0 && p.MasteryStage <= 5 {
			s.MasteryDistribution[p.MasteryStage]++
		}
		s.DifficultyDistribution[p.Difficulty]++
	}

	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	thirtyDaysAgo := now.Add(-WeakTagWindow)
	for _, a := range attempts {
		if a.AttemptedAt.After(now) {
			continue
		}
		if !a.AttemptedAt.Before(sevenDaysAgo) {
			s.AttemptsLast7Days++
		}
		if !a.AttemptedAt.Before(thirtyDaysAgo) {
			s.AttemptsLast30Days++
		}
	}

	s.WeakTags = weakTags(problems, attempts, now)
	return s
}

// weakTags computes per-tag failure rates over the trailing window.
// Only real review outcomes (PASS/SHAKY/FAIL) count; FAIL and SHAKY
// both count as failures. Tags need WeakTagMinAttempts samples and a
// rate above WeakTagThreshold to be surfaced.
func weakTags(problems []*problem.Problem, attempts []*attempt.Attempt, now time.Time) []TagStat {
	tagsByProblem := make(map[string][]string, len(problems))
	for _, p := range problems {
		tagsByProblem[p.ID] = p.Tags
	}

	cutoff := now.Add(-WeakTagWindow)
	type counter struct{ total, failures int }
	counts := make(map[string]*counter)

	for _, a := range attempts {
		if a.AttemptedAt.Before(cutoff) || a.AttemptedAt.After(now) || !a.Outcome.Countable() {
			continue
		}
		for _, tag := range tagsByProblem[a.ProblemID] {
			c := counts[tag]
			if c == nil {
				c = &counter{}
				counts[tag] = c
			}
			c.total++
			if a.Outcome.Failure() {
				c.failures++
			}
		}
	}

	var weak []TagStat
	for tag, c := range counts {
		if c.total < WeakTagMinAttempts {
			continue
		}
		rate := float64(c.failures) / float64(c.total)
		if rate > WeakTagThreshold {
			weak = append(weak, TagStat{
				Tag:           tag,
				TotalAttempts: c.total,
				FailRate:      math.Round(rate*100) / 100,
			})
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].FailRate != weak[j].FailRate {
			return weak[i].FailRate > weak[j].FailRate
		}
		return weak[i].Tag < weak[j].Tag
	})
	if len(weak) > WeakTagLimit {
		weak = weak[:WeakTagLimit]
	}
	return weak
}
