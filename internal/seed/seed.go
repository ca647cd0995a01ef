package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
	"github.com/leetreview/backend/internal/store"
	"github.com/leetreview/backend/internal/worker"
)

// entry describes one seeded problem: what it is, how the last attempt
// went, and how long ago it happened. Scheduling state is derived from
// ago so the demo set spans fresh, due-today, and overdue problems.
type entry struct {
	title      string
	url        string
	difficulty problem.Difficulty
	tags       []string
	trick      string
	mistakes   string
	outcome    attempt.Outcome
	ago        time.Duration
}

type insertResult struct {
	Title string
	Err   error
}

// Populate fills the store with a realistic demo set drawn from a
// LeetCode practice log. Inserts run concurrently; each problem is
// independent of the others.
func Populate(ctx context.Context, s store.Store, logger *slog.Logger, now time.Time) error {
	entries := demoEntries()

	pool := worker.NewPool[insertResult](4, len(entries))
	for _, e := range entries {
		pool.Submit(e.title, func() insertResult {
			return insertResult{Title: e.title, Err: insertEntry(ctx, s, e, now)}
		})
	}
	pool.Close()

	var failed int
	for result := range pool.Results() {
		if result.Output.Err != nil {
			failed++
			logger.Error("failed to seed problem", "title", result.Output.Title, "error", result.Output.Err)
		}
	}

	logger.Info("seeded database", "problems", len(entries)-failed, "failed", failed)
	return nil
}

func insertEntry(ctx context.Context, s store.Store, e entry, now time.Time) error {
	attemptedAt := now.Add(-e.ago)

	var url *string
	if e.url != "" {
		url = &e.url
	}
	notes := problem.Notes{}
	if e.trick != "" {
		notes.Trick = &e.trick
	}
	if e.mistakes != "" {
		notes.Mistakes = &e.mistakes
	}

	p, err := problem.New(e.title, url, problem.DefaultPlatform, e.difficulty, e.tags, notes, attemptedAt)
	if err != nil {
		return err
	}

	// Scheduling state is pinned rather than replayed: every seed
	// problem sits at stage 0 on a one day interval, so overdueness
	// follows directly from how long ago the attempt happened.
	p.IntervalDays = 1
	p.NextDueDate = attemptedAt.Add(24 * time.Hour)
	outcome := string(e.outcome)
	p.LastOutcome = &outcome
	p.LastAttemptedAt = &attemptedAt
	if e.outcome == attempt.OutcomePass {
		p.ConsecutiveSuccesses = 1
	}

	if err := s.SaveProblem(ctx, p); err != nil {
		return err
	}

	a, err := attempt.New(p.ID, e.outcome, 0, p.MasteryStage, p.NextDueDate, nil, nil, attemptedAt)
	if err != nil {
		return err
	}
	return s.ApplyAttempt(ctx, p, a)
}

func demoEntries() []entry {
	const (
		hour = time.Hour
		day  = 24 * time.Hour
	)
	return []entry{
		{
			title:      "Shortest Distance to Target String in a Circular Array",
			url:        "https://leetcode.com/problems/shortest-distance-to-target-string-in-a-circular-array/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "string"},
			outcome:    attempt.OutcomePass,
			ago:        3 * time.Minute,
		},
		{
			title:      "Count Pairs Of Similar Strings",
			url:        "https://leetcode.com/problems/count-pairs-of-similar-strings/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "string"},
			outcome:    attempt.OutcomePass,
			ago:        1 * hour,
		},
		{
			title:      "Delete Greatest Value in Each Row",
			url:        "https://leetcode.com/problems/delete-greatest-value-in-each-row/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "sorting", "matrix"},
			outcome:    attempt.OutcomePass,
			ago:        1 * hour,
		},
		{
			title:      "Minimum Number of Pushes to Type Word I",
			url:        "https://leetcode.com/problems/minimum-number-of-pushes-to-type-word-i/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string", "greedy"},
			outcome:    attempt.OutcomePass,
			ago:        1 * hour,
		},
		{
			title:      "Valid Parentheses",
			url:        "https://leetcode.com/problems/valid-parentheses/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string", "stack"},
			trick:      "Use a stack, push opening brackets, pop and match closing",
			outcome:    attempt.OutcomePass,
			ago:        16 * hour,
		},
		{
			title:      "Convert Integer to the Sum of Two No-Zero Integers",
			url:        "https://leetcode.com/problems/convert-integer-to-the-sum-of-two-no-zero-integers/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"math"},
			outcome:    attempt.OutcomePass,
			ago:        17 * hour,
		},
		{
			title:      "Largest Triangle Area",
			url:        "https://leetcode.com/problems/largest-triangle-area/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "math", "geometry"},
			mistakes:   "Got wrong answer, need to review triangle area formula",
			outcome:    attempt.OutcomeFail,
			ago:        17 * hour,
		},
		{
			title:      "Largest Perimeter Triangle",
			url:        "https://leetcode.com/problems/largest-perimeter-triangle/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "math", "sorting", "greedy"},
			outcome:    attempt.OutcomePass,
			ago:        17 * hour,
		},
		{
			title:      "Number of Unequal Triplets in Array",
			url:        "https://leetcode.com/problems/number-of-unequal-triplets-in-array/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map"},
			outcome:    attempt.OutcomePass,
			ago:        17 * hour,
		},
		{
			title:      "Two Sum",
			url:        "https://leetcode.com/problems/two-sum/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map"},
			trick:      "Use hash map to store complement values for O(n) solution",
			outcome:    attempt.OutcomePass,
			ago:        17 * hour,
		},
		{
			title:      "Set Mismatch",
			url:        "https://leetcode.com/problems/set-mismatch/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "sorting"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Find Common Characters",
			url:        "https://leetcode.com/problems/find-common-characters/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "string"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Remove All Adjacent Duplicates in String II",
			url:        "https://leetcode.com/problems/remove-all-adjacent-duplicates-in-string-ii/",
			difficulty: problem.DifficultyMedium,
			tags:       []string{"string", "stack"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Intersection of Multiple Arrays",
			url:        "https://leetcode.com/problems/intersection-of-multiple-arrays/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "sorting"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Intersection of Two Arrays II",
			url:        "https://leetcode.com/problems/intersection-of-two-arrays-ii/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "sorting", "two-pointers"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Intersection of Two Arrays",
			url:        "https://leetcode.com/problems/intersection-of-two-arrays/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map", "sorting"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Find the Difference of Two Arrays",
			url:        "https://leetcode.com/problems/find-the-difference-of-two-arrays/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map"},
			outcome:    attempt.OutcomePass,
			ago:        1 * day,
		},
		{
			title:      "Count Elements With Maximum Frequency",
			url:        "https://leetcode.com/problems/count-elements-with-maximum-frequency/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "hash-map"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Check If String Is a Prefix of Array",
			url:        "https://leetcode.com/problems/check-if-string-is-a-prefix-of-array/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "string"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Count Prefixes of a Given String",
			url:        "https://leetcode.com/problems/count-prefixes-of-a-given-string/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "string"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Check If a Word Occurs As a Prefix of Any Word in a Sentence",
			url:        "https://leetcode.com/problems/check-if-a-word-occurs-as-a-prefix-of-any-word-in-a-sentence/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Counting Words With a Given Prefix",
			url:        "https://leetcode.com/problems/counting-words-with-a-given-prefix/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "string"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Pass the Pillow",
			url:        "https://leetcode.com/problems/pass-the-pillow/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"math", "simulation"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Middle of the Linked List",
			url:        "https://leetcode.com/problems/middle-of-the-linked-list/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"linked-list", "two-pointers"},
			trick:      "Use slow/fast pointer technique",
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Find the Maximum Divisibility Score",
			url:        "https://leetcode.com/problems/find-the-maximum-divisibility-score/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Minimize String Length",
			url:        "https://leetcode.com/problems/minimize-string-length/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string", "hash-map"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Remove All Adjacent Duplicates In String",
			url:        "https://leetcode.com/problems/remove-all-adjacent-duplicates-in-string/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string", "stack"},
			outcome:    attempt.OutcomePass,
			ago:        2 * day,
		},
		{
			title:      "Count Largest Group",
			url:        "https://leetcode.com/problems/count-largest-group/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"hash-map", "math"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "First Letter to Appear Twice",
			url:        "https://leetcode.com/problems/first-letter-to-appear-twice/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"hash-map", "string"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "First Unique Character in a String",
			url:        "https://leetcode.com/problems/first-unique-character-in-a-string/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"hash-map", "string", "queue"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "Sort Characters By Frequency",
			url:        "https://leetcode.com/problems/sort-characters-by-frequency/",
			difficulty: problem.DifficultyMedium,
			tags:       []string{"hash-map", "string", "sorting", "heap"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "Check if Number Has Equal Digit Count and Digit Value",
			url:        "https://leetcode.com/problems/check-if-number-has-equal-digit-count-and-digit-value/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"hash-map", "string"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "Self Dividing Numbers",
			url:        "https://leetcode.com/problems/self-dividing-numbers/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"math"},
			outcome:    attempt.OutcomePass,
			ago:        3 * day,
		},
		{
			title:      "Perfect Number",
			url:        "https://leetcode.com/problems/perfect-number/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"math"},
			outcome:    attempt.OutcomePass,
			ago:        4 * day,
		},
		{
			title:      "Relative Ranks",
			url:        "https://leetcode.com/problems/relative-ranks/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"array", "sorting", "heap"},
			outcome:    attempt.OutcomePass,
			ago:        4 * day,
		},
		{
			title:      "Base 7",
			url:        "https://leetcode.com/problems/base-7/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"math"},
			outcome:    attempt.OutcomePass,
			ago:        4 * day,
		},
		{
			title:      "Valid Palindrome",
			url:        "https://leetcode.com/problems/valid-palindrome/",
			difficulty: problem.DifficultyEasy,
			tags:       []string{"string", "two-pointers"},
			trick:      "Use two pointers from both ends, skip non-alphanumeric",
			outcome:    attempt.OutcomePass,
			ago:        10 * day,
		},
	}
}
