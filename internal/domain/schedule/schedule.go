// Package schedule owns the mastery state machine: how a problem's
// stage, interval and due date move in response to attempt outcomes.
// Every transition is a pure function of (current state, outcome, now);
// replaying a problem's ledger always reproduces its scheduling state.
package schedule

import (
	"time"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
)

const (
	// MinStage..MaxStage bound the mastery ladder. Stage 0 is New,
	// stage 5 is Mastered. Mastered is not terminal: further passes
	// keep the stage at 5 and widen the interval.
	MinStage = 0
	MaxStage = 5

	// MinInterval is the spacing after creation and after any FAIL.
	MinInterval = 1
	// GrowthFactor widens the interval on repeated passes at stage 5,
	// once the ladder has been exhausted.
	GrowthFactor = 2
	// MaxInterval caps growth so due dates cannot drift unboundedly.
	MaxInterval = 365
	// ShrinkDivisor halves the interval on a SHAKY outcome.
	ShrinkDivisor = 2
	// PostponeOffset is how far a postpone pushes the due date.
	PostponeOffset = 24 * time.Hour
)

// intervalLadder maps mastery stage to review spacing in days.
var intervalLadder = [MaxStage + 1]int{1, 3, 7, 14, 30, 60}

// StageInterval returns the ladder spacing for a stage. Out-of-range
// stages clamp to the nearest rung.
func StageInterval(stage int) int {
	if stage < MinStage {
		stage = MinStage
	}
	if stage > MaxStage {
		stage = MaxStage
	}
	return intervalLadder[stage]
}

// StageLabel gives the human-readable name for a mastery stage.
func StageLabel(stage int) string {
	switch stage {
	case 0:
		return "New"
	case 1:
		return "Learning"
	case 2:
		return "Familiar"
	case 3:
		return "Comfortable"
	case 4:
		return "Proficient"
	case 5:
		return "Mastered"
	}
	return "Unknown"
}

// Apply transitions a problem for one attempt outcome and returns the
// ledger record to append. The problem is mutated in place; callers
// persist problem and attempt in one transaction or not at all.
//
// Transition table:
//   - PASS:  stage+1 (capped), successes+1, interval strictly grows,
//     due = now + interval.
//   - SHAKY: stage unchanged, successes reset, interval shrinks
//     (floored at MinInterval), due = now + interval.
//   - FAIL:  stage reset to 0, successes reset, interval reset to
//     MinInterval, due = now + MinInterval.
//   - SKIP:  no change to stage, interval, successes or due date.
//     Skipping never advances the review clock.
//
// POSTPONE is a separate operation; see Postpone.
func Apply(p *problem.Problem, outcome attempt.Outcome, timeSpent *int, notes *string, now time.Time) (*attempt.Attempt, error) {
	if _, err := attempt.ParseOutcome(string(outcome)); err != nil {
		return nil, err
	}
	if outcome == attempt.OutcomePostpone {
		return nil, attempt.ErrInvalidOutcome
	}

	stageBefore := p.MasteryStage

	switch outcome {
	case attempt.OutcomePass:
		p.MasteryStage = min(p.MasteryStage+1, MaxStage)
		p.ConsecutiveSuccesses++
		p.IntervalDays = nextPassInterval(p.MasteryStage, p.IntervalDays)
		p.NextDueDate = now.AddDate(0, 0, p.IntervalDays)

	case attempt.OutcomeShaky:
		p.ConsecutiveSuccesses = 0
		p.IntervalDays = max(p.IntervalDays/ShrinkDivisor, MinInterval)
		p.NextDueDate = now.AddDate(0, 0, p.IntervalDays)

	case attempt.OutcomeFail:
		p.MasteryStage = MinStage
		p.ConsecutiveSuccesses = 0
		p.IntervalDays = MinInterval
		p.NextDueDate = now.AddDate(0, 0, MinInterval)

	case attempt.OutcomeSkip:
		// Scheduling state deliberately untouched.
	}

	markAttempted(p, outcome, now)

	return attempt.New(p.ID, outcome, stageBefore, p.MasteryStage, p.NextDueDate, timeSpent, notes, now)
}

// Postpone pushes the due date forward by PostponeOffset from the
// current due date or from now, whichever lands later, leaving stage,
// interval and streak untouched. The move is still recorded in the
// ledger so history shows it.
func Postpone(p *problem.Problem, now time.Time) (*attempt.Attempt, error) {
	stageBefore := p.MasteryStage

	base := p.NextDueDate
	if now.After(base) {
		base = now
	}
	p.NextDueDate = base.Add(PostponeOffset)

	markAttempted(p, attempt.OutcomePostpone, now)

	return attempt.New(p.ID, attempt.OutcomePostpone, stageBefore, p.MasteryStage, p.NextDueDate, nil, nil, now)
}

// nextPassInterval computes the spacing after a PASS into newStage.
// The ladder drives growth until it tops out (repeated passes at stage
// 5); after that the interval doubles, capped at MaxInterval. Growth is
// strictly monotonic: the result always exceeds the prior interval
// unless already at the cap.
func nextPassInterval(newStage, prior int) int {
	next := StageInterval(newStage)
	if next <= prior {
		next = prior * GrowthFactor
	}
	if next > MaxInterval {
		next = MaxInterval
	}
	if next <= prior {
		// Already at the cap; hold there rather than shrink.
		next = MaxInterval
	}
	return next
}

func markAttempted(p *problem.Problem, outcome attempt.Outcome, now time.Time) {
	o := string(outcome)
	p.LastOutcome = &o
	t := now
	p.LastAttemptedAt = &t
	p.UpdatedAt = now
}
