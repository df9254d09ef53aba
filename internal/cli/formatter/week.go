package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pmorten/timetrail/internal/format"
	"github.com/pmorten/timetrail/internal/service"
)

// RenderWeek renders a full week view: a week header, one section per day
// with its segments newest-first, and a week total at the bottom.
func RenderWeek(view *service.WeekView) string {
	var b strings.Builder

	b.WriteString(Header("Week " + view.Label))
	b.WriteString("\n\n")

	if len(view.Days) == 0 {
		b.WriteString(Dim("No entries this week.") + "\n")
		return b.String()
	}

	var weekTotal time.Duration
	for _, day := range view.Days {
		weekTotal += day.Total

		label := DayLabel(day.Relation, day.Heading)
		b.WriteString(StyleBlue.Bold(true).Render(label))
		if label != day.Heading {
			b.WriteString("  " + Dim(day.Heading))
		}
		b.WriteString("\n")

		rows := make([][]string, 0, len(day.Segments))
		for _, seg := range day.Segments {
			end := seg.EndDisplay
			if seg.Active {
				end = ActivePill()
			}
			rows = append(rows, []string{
				TruncID(seg.EntryID),
				seg.StartDisplay,
				end,
				seg.DurationDisplay,
				StyleFg.Render(seg.Title),
				TagsBadge(seg.Tags),
			})
		}
		b.WriteString(RenderTable(
			[]string{"ID", "START", "END", "DURATION", "TITLE", "TAGS"},
			rows,
		))
		b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("day total"), Bold(day.TotalDisplay)))
	}

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("week total"), Bold(format.Duration(weekTotal))))
	return b.String()
}
