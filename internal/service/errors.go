package service

import "errors"

// The engine's error taxonomy. All are synchronous, recoverable-by-caller
// conditions; the surrounding layer translates them into localized user
// messages. NotFound surfaces as repository.ErrNotFound passing through
// unchanged. Store infrastructure failures also propagate unwrapped into
// this taxonomy.
var (
	// ErrActiveEntryExists rejects a start while another entry runs.
	ErrActiveEntryExists = errors.New("an entry is already running")
	// ErrNoActiveEntry rejects a stop when the owner is idle.
	ErrNoActiveEntry = errors.New("no entry is running")
	// ErrEmptyTitle rejects a title that trims to nothing.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrFutureStart rejects a start time after the engine clock's now.
	ErrFutureStart = errors.New("start time is in the future")
	// ErrEndBeforeStart rejects an end time earlier than the start time.
	ErrEndBeforeStart = errors.New("end time is before start time")
)
