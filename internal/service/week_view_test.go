package service

import (
	"context"
	"testing"
	"time"

	"github.com/pmorten/timetrail/internal/domain"
	"github.com/pmorten/timetrail/internal/testutil"
	"github.com/pmorten/timetrail/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savePrefs(t *testing.T, f *engineFixture, opts ...testutil.PrefsOption) {
	t.Helper()
	p := testutil.NewTestPreferences("o1", opts...)
	require.NoError(t, f.prefs.Upsert(context.Background(), p))
}

func TestListWeek_SundayStartFromWednesday(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f,
		testutil.WithTimezone("America/New_York"),
		testutil.WithStartOfWeek(time.Sunday))

	ny, _ := time.LoadLocation("America/New_York")

	// testNow is Wednesday 2026-02-11 10:00 UTC.
	view, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, ny).Unix(), view.Start.Unix())
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, ny).Unix(), view.End.Unix())
	assert.Equal(t, "Feb 8 - Feb 14, 2026", view.Label)
	assert.Empty(t, view.Days)
}

func TestListWeek_PreviousAndNextShiftBySevenLocalDays(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f, testutil.WithStartOfWeek(time.Monday))

	current, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	prev, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekPrevious)
	require.NoError(t, err)
	next, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekNext)
	require.NoError(t, err)

	assert.True(t, prev.End.Equal(current.Start))
	assert.True(t, next.Start.Equal(current.End))
}

func TestListWeek_MidnightSplitEntry(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f,
		testutil.WithTimezone("America/New_York"),
		testutil.WithStartOfWeek(time.Sunday))

	ny, _ := time.LoadLocation("America/New_York")

	// Monday 20:00 to Tuesday 02:00 local.
	start := time.Date(2026, 2, 9, 20, 0, 0, 0, ny)
	entry := testutil.NewTestEntry("o1", "night shift",
		testutil.WithStartTime(start),
		testutil.WithEndTime(start.Add(6*time.Hour)))
	require.NoError(t, f.entries.Create(ctx, entry))

	view, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	require.Len(t, view.Days, 2, "one stored entry renders as two day groups")

	// Most recent day first: Tuesday, then Monday.
	tue, mon := view.Days[0], view.Days[1]
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, ny).Unix(), tue.Date.Unix())
	assert.Equal(t, "02:00:00", tue.TotalDisplay)
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, ny).Unix(), mon.Date.Unix())
	assert.Equal(t, "03:59:59", mon.TotalDisplay, "split boundary truncates to whole seconds")

	// Both segments are views over one underlying row.
	require.Len(t, tue.Segments, 1)
	require.Len(t, mon.Segments, 1)
	assert.Equal(t, entry.ID, tue.Segments[0].EntryID)
	assert.Equal(t, entry.ID, mon.Segments[0].EntryID)

	// Durations sum to six hours minus the sub-second rounding artifact.
	total := tue.Total + mon.Total
	assert.Equal(t, 6*time.Hour-time.Second, total)
}

func TestListWeek_DeletingSplitEntryRemovesBothSegments(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f,
		testutil.WithTimezone("America/New_York"),
		testutil.WithStartOfWeek(time.Sunday))

	ny, _ := time.LoadLocation("America/New_York")
	start := time.Date(2026, 2, 9, 20, 0, 0, 0, ny)
	entry := testutil.NewTestEntry("o1", "night shift",
		testutil.WithStartTime(start),
		testutil.WithEndTime(start.Add(6*time.Hour)))
	require.NoError(t, f.entries.Create(ctx, entry))

	view, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	require.Len(t, view.Days, 2)

	require.NoError(t, f.svc.Delete(ctx, "o1", entry.ID))

	view, err = f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	assert.Empty(t, view.Days, "segments are views over one row, not rows themselves")
}

func TestListWeek_ActiveEntryRendersInProgress(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f)

	_, err := f.svc.Start(ctx, "o1", "running task", nil)
	require.NoError(t, err)
	f.clock.Advance(45 * time.Minute)

	view, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	require.Len(t, view.Days, 1)
	require.Len(t, view.Days[0].Segments, 1)

	seg := view.Days[0].Segments[0]
	assert.True(t, seg.Active)
	assert.Empty(t, seg.EndDisplay, "the in-progress marker belongs to the translation layer")
	assert.Equal(t, "00:45:00", seg.DurationDisplay, "now is the effective end for splitting only")
	assert.Equal(t, timeline.DayToday, view.Days[0].Relation)
}

func TestListWeek_DayRelations(t *testing.T) {
	f := newEngine(t)
	ctx := context.Background()
	savePrefs(t, f, testutil.WithStartOfWeek(time.Monday))

	yesterday := testNow.AddDate(0, 0, -1)
	require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry("o1", "yesterday work",
		testutil.WithStartTime(yesterday.Add(-time.Hour)),
		testutil.WithEndTime(yesterday))))
	require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry("o1", "monday work",
		testutil.WithStartTime(testNow.AddDate(0, 0, -2).Add(-time.Hour)),
		testutil.WithEndTime(testNow.AddDate(0, 0, -2)))))

	view, err := f.svc.ListWeek(ctx, "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)
	require.Len(t, view.Days, 2)
	assert.Equal(t, timeline.DayYesterday, view.Days[0].Relation)
	assert.Equal(t, timeline.DayOther, view.Days[1].Relation)
}

func TestListWeek_DefaultsWhenNoPreferencesSaved(t *testing.T) {
	f := newEngine(t)

	view, err := f.svc.ListWeek(context.Background(), "o1", f.clock.Now(), domain.WeekCurrent)
	require.NoError(t, err)

	// Defaults: UTC, Monday start.
	assert.Equal(t, time.Monday, view.Start.Weekday())
	assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), view.Start.UTC())
}

func TestListWeek_UnknownDirection(t *testing.T) {
	f := newEngine(t)

	_, err := f.svc.ListWeek(context.Background(), "o1", f.clock.Now(), domain.WeekDirection("sideways"))
	assert.Error(t, err)
}
