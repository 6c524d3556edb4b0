package domain

import "time"

// Overlaps reports whether [s1, e1) and [s2, e2) share at least one instant.
// Intervals that only touch at an endpoint do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// OverlapsAny reports whether candidate overlaps any of existing.
// A stored event with the candidate's own (non-zero) ID is skipped, so an
// update never collides with the record it replaces.
func OverlapsAny(candidate Event, existing []Event) bool {
	for _, e := range existing {
		if candidate.ID != 0 && e.ID == candidate.ID {
			continue
		}
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}
