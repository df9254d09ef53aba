// Package timeline holds the pure aggregation algorithms behind the week
// view: week-window computation, midnight splitting, and day grouping. All
// functions are side-effect free; callers supply the timezone and the
// reference instant.
package timeline

import "time"

// DaySegment is the per-local-day slice of one stored entry. A segment is a
// view for display and summation only; the underlying entry is never mutated
// by splitting. Start and End carry the viewer's location; Date is the local
// midnight of the calendar day the segment belongs to.
type DaySegment struct {
	Date    time.Time
	EntryID string
	Title   string
	Tags    []string
	Start   time.Time
	End     time.Time
	Active  bool
}

// Duration returns the segment length truncated to whole seconds. A segment
// clipped at a midnight boundary ends one millisecond before the boundary,
// so truncation absorbs the artifact.
func (s DaySegment) Duration() time.Duration {
	d := s.End.Sub(s.Start)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// DayBucket groups the segments of one local calendar day.
type DayBucket struct {
	Date     time.Time
	Segments []DaySegment
}

// Total sums the second-truncated durations of the bucket's segments.
func (b DayBucket) Total() time.Duration {
	var total time.Duration
	for _, s := range b.Segments {
		total += s.Duration()
	}
	return total
}

type DayRelation int

const (
	DayOther DayRelation = iota
	DayToday
	DayYesterday
)

// RelationTo classifies date against the viewer's current local day. Both
// arguments must be local midnights in the same location.
func RelationTo(date, today time.Time) DayRelation {
	switch {
	case date.Equal(today):
		return DayToday
	case date.Equal(today.AddDate(0, 0, -1)):
		return DayYesterday
	default:
		return DayOther
	}
}

// LocalMidnight returns the midnight starting the local calendar day
// containing t.
func LocalMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
