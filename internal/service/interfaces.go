package service

import (
	"context"
	"time"

	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/importer"
	"github.com/pmorten/timetrail/internal/timeline"
)

// EntryPatch carries the optional fields of an edit. Nil fields keep their
// current values; supplying an EndTime can only close or move an end, never
// reopen an entry.
type EntryPatch struct {
	Title     *string
	StartTime *time.Time
	EndTime   *time.Time
}

// TimelineService owns the entry lifecycle per owner: two states, Idle and
// Running, with the single-active-entry invariant enforced against the store.
type TimelineService interface {
	Start(ctx context.Context, ownerID, title string, tags []string) (*domain.TimeEntry, error)
	Stop(ctx context.Context, ownerID string) (*domain.TimeEntry, error)
	// ContinueFrom stops any running entry and starts a new one copying the
	// template's title and tags, committed as one unit. The intermediate
	// idle state is never observable.
	ContinueFrom(ctx context.Context, ownerID, templateEntryID string) (*domain.TimeEntry, error)
	Edit(ctx context.Context, ownerID, entryID string, patch EntryPatch) (*domain.TimeEntry, error)
	Delete(ctx context.Context, ownerID, entryID string) error
	ListRecent(ctx context.Context, ownerID string, limit int) ([]*domain.TimeEntry, error)
	ListWeek(ctx context.Context, ownerID string, ref time.Time, dir domain.WeekDirection) (*WeekView, error)
}

type PreferencesService interface {
	Get(ctx context.Context, ownerID string) (*domain.UserPreferences, error)
	Update(ctx context.Context, p *domain.UserPreferences) error
}

// ImportResult holds the outcome of a CSV import.
type ImportResult struct {
	Imported int
	Skipped  int
}

type ImportService interface {
	ImportEntries(ctx context.Context, ownerID string, rows []importer.Row) (*ImportResult, error)
}

// SegmentView is a day segment plus its display strings.
type SegmentView struct {
	timeline.DaySegment
	StartDisplay    string
	EndDisplay      string // empty while the segment is in progress
	DurationDisplay string
}

// DayView is one rendered day bucket. Heading carries the locale-formatted
// date; Relation tells the caller when to substitute a relative label from
// its translation catalog instead.
type DayView struct {
	Date         time.Time
	Relation     timeline.DayRelation
	Heading      string
	Total        time.Duration
	TotalDisplay string
	Segments     []SegmentView
}

// WeekView is the page model for one week of an owner's timeline.
type WeekView struct {
	Start time.Time
	End   time.Time
	Label string
	Days  []DayView
}
