package store

import (
	"context"
	"errors"

	"github.com/leetreview/backend/internal/domain/attempt"
	"github.com/leetreview/backend/internal/domain/problem"
)

var (
	ErrNotFound = errors.New("not found")
)

// HistoryEntry is an attempt enriched with its problem's title and
// difficulty for the cross-problem history view.
type HistoryEntry struct {
	Attempt           *attempt.Attempt
	ProblemTitle      string
	ProblemDifficulty problem.Difficulty
}

// HistoryFilter narrows the history listing.
type HistoryFilter struct {
	Limit   int
	Offset  int
	Outcome *attempt.Outcome
}

// Store is the durable record store for problems and their attempt
// ledger. ApplyAttempt must persist the problem update and the attempt
// insert in a single transaction: a crash mid-operation leaves the
// problem in its pre-operation state.
type Store interface {
	SaveProblem(ctx context.Context, p *problem.Problem) error
	GetProblem(ctx context.Context, id string) (*problem.Problem, error)
	ListProblems(ctx context.Context) ([]*problem.Problem, error)
	UpdateProblemDetails(ctx context.Context, p *problem.Problem) error
	DeleteProblem(ctx context.Context, id string) error

	ApplyAttempt(ctx context.Context, p *problem.Problem, a *attempt.Attempt) error
	ListAttemptsByProblem(ctx context.Context, problemID string) ([]*attempt.Attempt, error)
	ListAllAttempts(ctx context.Context) ([]*attempt.Attempt, error)
	ListHistory(ctx context.Context, f HistoryFilter) ([]HistoryEntry, int, error)
}
