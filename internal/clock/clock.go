// Package clock provides the time source injected into the timeline engine.
// Operations sample Now exactly once; tests substitute a fixed clock.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock, truncated to whole seconds in UTC. Entry
// instants never need sub-second precision and truncating here keeps stored
// timestamps stable across format round-trips.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
