package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrActiveConflict is returned when an insert or update would create a
// second running entry for the same owner. It maps the partial unique index
// on (owner_id) WHERE end_time IS NULL, which is the authoritative guard for
// the single-active-entry invariant.
var ErrActiveConflict = errors.New("owner already has a running entry")
