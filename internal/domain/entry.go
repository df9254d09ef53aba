package domain

import (
	"strings"
	"time"
)

// TimeEntry is one tracked activity. EndTime is nil while the entry is
// running; all instants are stored in UTC.
type TimeEntry struct {
	ID        string
	OwnerID   string
	Title     string
	StartTime time.Time
	EndTime   *time.Time
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRunning reports whether the entry has no end time yet.
func (e *TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// DurationAt returns the elapsed duration, using now as the effective end
// for a running entry.
func (e *TimeEntry) DurationAt(now time.Time) time.Duration {
	end := now
	if e.EndTime != nil {
		end = *e.EndTime
	}
	if end.Before(e.StartTime) {
		return 0
	}
	return end.Sub(e.StartTime)
}

// Stop closes the entry at the given instant.
func (e *TimeEntry) Stop(at time.Time) {
	t := at.UTC()
	e.EndTime = &t
}

// NormalizeTags collapses duplicates while preserving first-seen order and
// drops tags that trim to empty.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		t := strings.TrimSpace(tag)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
