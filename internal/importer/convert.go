package importer

import (
	"fmt"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Convert resolves a row's wall-clock fields against the importing user's
// timezone and returns UTC instants. The export carries local times, so the
// same file imports to different instants for users in different zones.
func Convert(row Row, loc *time.Location) (start, end time.Time, err error) {
	start, err = parseLocal(row.StartDate, row.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("row start: %w", err)
	}
	end, err = parseLocal(row.EndDate, row.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("row end: %w", err)
	}
	return start.UTC(), end.UTC(), nil
}

func parseLocal(date, clock string, loc *time.Location) (time.Time, error) {
	if date == "" || clock == "" {
		return time.Time{}, fmt.Errorf("missing date or time component")
	}
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q %q: %w", date, clock, err)
	}
	return t, nil
}
