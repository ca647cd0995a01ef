// internal/clock/clock.go
package clock

import "time"

// Clock supplies the current instant. Scheduling code never reads the
// wall clock directly; it receives a Clock so due-date math is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
