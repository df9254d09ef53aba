package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/pmorten/timetrail/internal/domain"
)

// Entry options
type EntryOption func(*domain.TimeEntry)

func WithStartTime(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.StartTime = t.UTC()
	}
}

func WithEndTime(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		u := t.UTC()
		e.EndTime = &u
	}
}

func WithTags(tags ...string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Tags = tags
	}
}

// NewTestEntry builds a stopped one-hour entry ending now. Use WithEndTime /
// WithStartTime to reshape it, or Running() for an open entry.
func NewTestEntry(ownerID, title string, opts ...EntryOption) *domain.TimeEntry {
	now := time.Now().UTC().Truncate(time.Second)
	end := now
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     title,
		StartTime: now.Add(-time.Hour),
		EndTime:   &end,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Running clears the end time, making the fixture an active entry.
func Running() EntryOption {
	return func(e *domain.TimeEntry) {
		e.EndTime = nil
	}
}

// Preferences options
type PrefsOption func(*domain.UserPreferences)

func WithTimezone(tz string) PrefsOption {
	return func(p *domain.UserPreferences) {
		p.Timezone = tz
	}
}

func WithStartOfWeek(d time.Weekday) PrefsOption {
	return func(p *domain.UserPreferences) {
		p.StartOfWeek = d
	}
}

func WithLocale(locale string) PrefsOption {
	return func(p *domain.UserPreferences) {
		p.Locale = locale
	}
}

func NewTestPreferences(ownerID string, opts ...PrefsOption) *domain.UserPreferences {
	p := domain.DefaultPreferences(ownerID)
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	for _, opt := range opts {
		opt(p)
	}
	return p
}
