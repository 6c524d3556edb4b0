package domain

import (
	"errors"
	"time"
)

var (
	ErrEventOverlap     = errors.New("event overlaps with existing events")
	ErrInvalidTimeRange = errors.New("event start time must be before end time")
)

// Event is a calendar entry occupying the half-open interval [StartTime, EndTime).
// ID is zero until the store assigns one.
type Event struct {
	ID        int64
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

func (e Event) ValidRange() bool {
	return e.StartTime.Before(e.EndTime)
}

// SameWindow reports whether both events cover exactly the same instants.
func (e Event) SameWindow(other Event) bool {
	return e.StartTime.Equal(other.StartTime) && e.EndTime.Equal(other.EndTime)
}

func (e Event) Overlaps(other Event) bool {
	return Overlaps(e.StartTime, e.EndTime, other.StartTime, other.EndTime)
}
