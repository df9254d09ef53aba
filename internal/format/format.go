// Package format renders instants and durations for display. Functions are
// pure; the viewer's timezone and locale arrive as parameters and no engine
// state is consulted.
package format

import (
	"fmt"
	"time"
)

// Duration renders d as zero-padded HH:MM:SS with unbounded hours.
// Duration formatting is locale-invariant. Negative inputs clamp to zero.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Truncate(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Clock renders the time of day honoring the locale's hour cycle.
func Clock(t time.Time, locale string) string {
	return t.Format(resolve(locale).clock)
}

// Instant renders a full date-time in the viewer's location and locale.
func Instant(t time.Time, loc *time.Location, locale string) string {
	return t.In(loc).Format(resolve(locale).instant)
}

// DayHeading renders the weekday + date heading for a day bucket. Relative
// labels ("Today", "Yesterday") are the translation layer's job; callers
// substitute them based on the aggregator's day classification.
func DayHeading(date time.Time, locale string) string {
	return date.Format(resolve(locale).heading)
}

// WeekRangeLabel renders a [start, end) week window as a human range, e.g.
// "Feb 9 - Feb 15, 2026". end is exclusive, so the displayed last day is the
// day before it.
func WeekRangeLabel(start, end time.Time, locale string) string {
	spec := resolve(locale)
	last := end.AddDate(0, 0, -1)
	if start.Year() != last.Year() {
		return fmt.Sprintf("%s%s - %s%s",
			start.Format(spec.monthDay), start.Format(spec.year),
			last.Format(spec.monthDay), last.Format(spec.year))
	}
	return fmt.Sprintf("%s - %s%s",
		start.Format(spec.monthDay), last.Format(spec.monthDay), last.Format(spec.year))
}
