package timeline

import (
	"time"

	"github.com/pmorten/timetrail/internal/domain"
)

// splitClip is how far before a midnight boundary the earlier segment of a
// split ends. Display durations are truncated to whole seconds, so each
// crossing loses at most one second on screen; the stored entry is untouched.
const splitClip = time.Millisecond

// SplitEntry slices one entry into per-local-day segments for the viewer's
// location. A running entry uses now as its effective end for splitting only
// and keeps Active set. Entries yield one segment per local day touched:
// zero-duration entries produce a single zero-length segment, and entries
// spanning several days produce full-day segments for the interior days.
func SplitEntry(e *domain.TimeEntry, loc *time.Location, now time.Time) []DaySegment {
	active := e.EndTime == nil
	end := now
	if !active {
		end = *e.EndTime
	}

	start := e.StartTime.In(loc)
	endLocal := end.In(loc)
	if endLocal.Before(start) {
		endLocal = start
	}

	var segments []DaySegment
	cur := start
	for {
		day := LocalMidnight(cur, loc)
		nextMidnight := day.AddDate(0, 0, 1)
		if !endLocal.After(nextMidnight) {
			// Final day; an end exactly on the boundary stays here.
			segments = append(segments, DaySegment{
				Date:    day,
				EntryID: e.ID,
				Title:   e.Title,
				Tags:    e.Tags,
				Start:   cur,
				End:     endLocal,
				Active:  active,
			})
			return segments
		}
		segments = append(segments, DaySegment{
			Date:    day,
			EntryID: e.ID,
			Title:   e.Title,
			Tags:    e.Tags,
			Start:   cur,
			End:     nextMidnight.Add(-splitClip),
			Active:  active,
		})
		cur = nextMidnight
	}
}

// SplitAll splits every entry and keeps only segments whose day falls inside
// the window [windowStart, windowEnd), both local midnights.
func SplitAll(entries []*domain.TimeEntry, loc *time.Location, now, windowStart, windowEnd time.Time) []DaySegment {
	var segments []DaySegment
	for _, e := range entries {
		for _, s := range SplitEntry(e, loc, now) {
			if s.Date.Before(windowStart) || !s.Date.Before(windowEnd) {
				continue
			}
			segments = append(segments, s)
		}
	}
	return segments
}
