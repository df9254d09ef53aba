package formatter

import (
	"testing"
	"time"

	"github.com/pmorten/timetrail/internal/service"
	"github.com/pmorten/timetrail/internal/timeline"
	"github.com/stretchr/testify/assert"
)

func TestRenderWeek_EmptyWeek(t *testing.T) {
	view := &service.WeekView{Label: "Feb 9 - Feb 15, 2026"}

	out := RenderWeek(view)
	assert.Contains(t, out, "WEEK FEB 9 - FEB 15, 2026")
	assert.Contains(t, out, "No entries this week.")
}

func TestRenderWeek_DaysAndTotals(t *testing.T) {
	view := &service.WeekView{
		Label: "Feb 9 - Feb 15, 2026",
		Days: []service.DayView{
			{
				Relation:     timeline.DayToday,
				Heading:      "Wednesday, February 11",
				Total:        2*time.Hour + 15*time.Minute,
				TotalDisplay: "02:15:00",
				Segments: []service.SegmentView{
					{
						DaySegment:      timeline.DaySegment{EntryID: "e1e1e1e1-0000", Title: "deep work", Tags: []string{"focus"}, Active: true},
						StartDisplay:    "9:00 AM",
						DurationDisplay: "01:00:00",
					},
					{
						DaySegment:      timeline.DaySegment{EntryID: "e2e2e2e2-0000", Title: "standup"},
						StartDisplay:    "10:00 AM",
						EndDisplay:      "11:15 AM",
						DurationDisplay: "01:15:00",
					},
				},
			},
			{
				Relation:     timeline.DayOther,
				Heading:      "Monday, February 9",
				Total:        45 * time.Minute,
				TotalDisplay: "00:45:00",
				Segments: []service.SegmentView{
					{
						DaySegment:      timeline.DaySegment{EntryID: "e3e3e3e3-0000", Title: "planning"},
						StartDisplay:    "2:00 PM",
						EndDisplay:      "2:45 PM",
						DurationDisplay: "00:45:00",
					},
				},
			},
		},
	}

	out := RenderWeek(view)

	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Wednesday, February 11")
	assert.Contains(t, out, "Monday, February 9")
	assert.NotContains(t, out, "Yesterday")

	assert.Contains(t, out, "deep work")
	assert.Contains(t, out, "running", "active segments show the pill instead of an end time")
	assert.Contains(t, out, "standup")
	assert.Contains(t, out, "11:15 AM")
	assert.Contains(t, out, "focus")

	assert.Contains(t, out, "02:15:00")
	assert.Contains(t, out, "00:45:00")
	assert.Contains(t, out, "03:00:00", "week total sums day totals")

	assert.Contains(t, out, "e1e1e1e1", "IDs are truncated to eight characters")
	assert.NotContains(t, out, "e1e1e1e1-0000")
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Today", DayLabel(timeline.DayToday, "Wednesday, February 11"))
	assert.Equal(t, "Yesterday", DayLabel(timeline.DayYesterday, "Tuesday, February 10"))
	assert.Equal(t, "Monday, February 9", DayLabel(timeline.DayOther, "Monday, February 9"))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"abc", "short"},
			{"defghij", "a much longer title"},
		},
	)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "a much longer title")
	assert.Contains(t, out, "─")
}
