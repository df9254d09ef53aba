package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pmorten/timetrail/internal/timeline"
)

// ActivePill returns a colored running indicator.
func ActivePill() string {
	return StyleGreen.Render("● running")
}

// TagsBadge renders a tag list as a single purple-styled cell.
func TagsBadge(tags []string) string {
	if len(tags) == 0 {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(strings.Join(tags, ", "))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// DayLabel picks the label for a day heading. Today and yesterday get their
// relative names; other days keep the locale-formatted heading.
func DayLabel(relation timeline.DayRelation, heading string) string {
	switch relation {
	case timeline.DayToday:
		return "Today"
	case timeline.DayYesterday:
		return "Yesterday"
	default:
		return heading
	}
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	default:
		return t.Format("Jan 2 15:04")
	}
}
