package problem

import (
	"errors"
	"strings"
	"time"

	"github.com/leetreview/backend/internal/id"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// ParseDifficulty normalizes and validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", errors.New("difficulty must be EASY, MEDIUM, or HARD")
}

// Rank orders difficulties EASY < MEDIUM < HARD for sorting.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	}
	return 3
}

// Notes holds the free-text study notes attached to a problem.
// Each field is independently optional.
type Notes struct {
	Trick     *string
	Mistakes  *string
	EdgeCases *string
}

// Problem is a tracked coding problem. Descriptive fields are edited
// through UpdateDetails/UpdateNotes; scheduling fields are mutated only
// by the schedule package.
type Problem struct {
	ID         string
	Title      string
	Platform   string
	URL        *string
	Difficulty Difficulty
	Tags       []string
	Notes      Notes
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Scheduling state
	MasteryStage         int // 0 (New) .. 5 (Mastered)
	IntervalDays         int // current spacing, always >= 1
	NextDueDate          time.Time
	ConsecutiveSuccesses int
	LastOutcome          *string
	LastAttemptedAt      *time.Time
}

const DefaultPlatform = "LeetCode"

// New creates a problem that is immediately due: stage 0, interval of
// one day, next_due_date at creation time.
func New(title string, url *string, platform string, difficulty Difficulty, tags []string, notes Notes, now time.Time) (*Problem, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("title is required")
	}
	if _, err := ParseDifficulty(string(difficulty)); err != nil {
		return nil, err
	}
	if err := validateURL(url); err != nil {
		return nil, err
	}
	if platform == "" {
		platform = DefaultPlatform
	}

	return &Problem{
		ID:                   id.GenerateID(),
		Title:                strings.TrimSpace(title),
		Platform:             platform,
		URL:                  normalizeURL(url),
		Difficulty:           difficulty,
		Tags:                 dedupeTags(tags),
		Notes:                notes,
		CreatedAt:            now,
		UpdatedAt:            now,
		MasteryStage:         0,
		IntervalDays:         1,
		NextDueDate:          now,
		ConsecutiveSuccesses: 0,
	}, nil
}

// UpdateDetails replaces descriptive fields. Scheduling state is not
// touched. Nil pointers mean "leave unchanged"; tags nil means
// unchanged, empty slice clears.
func (p *Problem) UpdateDetails(title, platform *string, url *string, urlSet bool, difficulty *Difficulty, tags []string, now time.Time) error {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return errors.New("title is required")
		}
		p.Title = strings.TrimSpace(*title)
	}
	if platform != nil && *platform != "" {
		p.Platform = *platform
	}
	if urlSet {
		if err := validateURL(url); err != nil {
			return err
		}
		p.URL = normalizeURL(url)
	}
	if difficulty != nil {
		d, err := ParseDifficulty(string(*difficulty))
		if err != nil {
			return err
		}
		p.Difficulty = d
	}
	if tags != nil {
		p.Tags = dedupeTags(tags)
	}
	p.UpdatedAt = now
	return nil
}

// UpdateNotes replaces the study notes. Nil pointers clear the
// corresponding note.
func (p *Problem) UpdateNotes(notes Notes, now time.Time) {
	p.Notes = notes
	p.UpdatedAt = now
}

// Attempted reports whether the problem has ever been reviewed.
func (p *Problem) Attempted() bool {
	return p.LastAttemptedAt != nil
}

func validateURL(url *string) error {
	if url == nil || *url == "" {
		return nil
	}
	if !strings.HasPrefix(*url, "http://") && !strings.HasPrefix(*url, "https://") {
		return errors.New("url must start with http:// or https://")
	}
	return nil
}

func normalizeURL(url *string) *string {
	if url == nil || *url == "" {
		return nil
	}
	return url
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
