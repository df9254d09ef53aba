package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(day, title string, startHour, minutes int) DaySegment {
	date, _ := time.Parse("2006-01-02", day)
	start := date.Add(time.Duration(startHour) * time.Hour)
	return DaySegment{
		Date:    date,
		EntryID: "e-" + title,
		Title:   title,
		Start:   start,
		End:     start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestGroupByDay_OrdersDaysAndSegments(t *testing.T) {
	segments := []DaySegment{
		seg("2026-02-09", "mon-early", 8, 30),
		seg("2026-02-11", "wed", 9, 60),
		seg("2026-02-09", "mon-late", 14, 45),
	}

	buckets := GroupByDay(segments)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2026-02-11", buckets[0].Date.Format("2006-01-02"), "most recent day first")
	assert.Equal(t, "2026-02-09", buckets[1].Date.Format("2006-01-02"))

	monday := buckets[1]
	require.Len(t, monday.Segments, 2)
	assert.Equal(t, "mon-late", monday.Segments[0].Title, "most recent start first within a day")
	assert.Equal(t, "mon-early", monday.Segments[1].Title)
}

func TestDayBucket_Total(t *testing.T) {
	buckets := GroupByDay([]DaySegment{
		seg("2026-02-09", "a", 8, 30),
		seg("2026-02-09", "b", 10, 90),
	})
	require.Len(t, buckets, 1)
	assert.Equal(t, 2*time.Hour, buckets[0].Total())
}

func TestDayBucket_TotalTruncatesSplitArtifact(t *testing.T) {
	date := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	clipped := DaySegment{
		Date:  date,
		Start: date.Add(20 * time.Hour),
		End:   date.Add(24*time.Hour - time.Millisecond),
	}
	buckets := GroupByDay([]DaySegment{clipped})
	assert.Equal(t, 4*time.Hour-time.Second, buckets[0].Total())
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
