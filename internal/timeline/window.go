package timeline

import "time"

// WeekWindow computes the 7-day week [start, end) containing ref: start is
// the most recent occurrence of startOfWeek at local midnight, at or before
// the local day containing ref. The window is seven calendar days long;
// around DST transitions its elapsed length differs from 7*24h, which is why
// the end is derived with AddDate rather than a fixed duration.
func WeekWindow(ref time.Time, loc *time.Location, startOfWeek time.Weekday) (start, end time.Time) {
	day := LocalMidnight(ref, loc)
	back := (int(day.Weekday()) - int(startOfWeek) + 7) % 7
	start = day.AddDate(0, 0, -back)
	return start, start.AddDate(0, 0, 7)
}

// ShiftWindow moves a week start by n weeks in local calendar days and
// re-anchors it at local midnight, keeping window arithmetic DST-safe.
func ShiftWindow(start time.Time, loc *time.Location, n int) (time.Time, time.Time) {
	s := LocalMidnight(start.AddDate(0, 0, 7*n), loc)
	return s, s.AddDate(0, 0, 7)
}
