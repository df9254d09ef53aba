package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmptyDescription marks a row without a usable title.
var ErrEmptyDescription = errors.New("row has an empty description")

// ErrEndBeforeStart marks a row whose resolved end precedes its start.
var ErrEndBeforeStart = errors.New("row end time is before its start time")

// Validate checks one row after conversion. Imported entries are always
// stopped, so both endpoints are required and must be ordered.
func Validate(row Row, start, end time.Time) error {
	if strings.TrimSpace(row.Description) == "" {
		return fmt.Errorf("validating row: %w", ErrEmptyDescription)
	}
	if end.Before(start) {
		return fmt.Errorf("validating row: %w", ErrEndBeforeStart)
	}
	return nil
}
