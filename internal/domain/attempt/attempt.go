package attempt

import (
	"errors"
	"strings"
	"time"

	"github.com/leetreview/backend/internal/id"
)

// Sentinel errors. Check with errors.Is.
var (
	ErrInvalidOutcome   = errors.New("attempt: invalid outcome")
	ErrInvalidTimeSpent = errors.New("attempt: time spent must be a positive number of minutes")
)

type Outcome string

const (
	OutcomePass     Outcome = "PASS"
	OutcomeShaky    Outcome = "SHAKY"
	OutcomeFail     Outcome = "FAIL"
	OutcomeSkip     Outcome = "SKIP"
	OutcomePostpone Outcome = "POSTPONE"
)

// ParseOutcome normalizes and validates an outcome string. POSTPONE is
// a valid ledger outcome but is produced by the dedicated postpone
// operation, never by record-attempt; callers of that surface check
// separately.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(strings.ToUpper(strings.TrimSpace(s)))
	switch o {
	case OutcomePass, OutcomeShaky, OutcomeFail, OutcomeSkip, OutcomePostpone:
		return o, nil
	}
	return "", ErrInvalidOutcome
}

// Countable reports whether the outcome is a real review result for
// statistics purposes. SKIP and POSTPONE appear in history but carry
// no signal about recall.
func (o Outcome) Countable() bool {
	return o == OutcomePass || o == OutcomeShaky || o == OutcomeFail
}

// Failure reports whether the outcome counts against a tag's fail rate.
func (o Outcome) Failure() bool {
	return o == OutcomeFail || o == OutcomeShaky
}

// Attempt is one immutable review event for a problem. Attempts are
// only ever appended; they are deleted solely by cascade when their
// problem is removed.
type Attempt struct {
	ID               string
	ProblemID        string
	Outcome          Outcome
	StageBefore      int
	StageAfter       int
	NextDueDateAfter time.Time
	TimeSpentMinutes *int
	Notes            *string
	AttemptedAt      time.Time
}

// New builds an attempt record. Time spent and notes never influence
// scheduling; they are carried on the record only.
func New(problemID string, outcome Outcome, stageBefore, stageAfter int, nextDue time.Time, timeSpent *int, notes *string, at time.Time) (*Attempt, error) {
	if timeSpent != nil && *timeSpent <= 0 {
		return nil, ErrInvalidTimeSpent
	}
	return &Attempt{
		ID:               id.GenerateID(),
		ProblemID:        problemID,
		Outcome:          outcome,
		StageBefore:      stageBefore,
		StageAfter:       stageAfter,
		NextDueDateAfter: nextDue,
		TimeSpentMinutes: timeSpent,
		Notes:            notes,
		AttemptedAt:      at,
	}, nil
}
