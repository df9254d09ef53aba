package domain

import "time"

// UserPreferences drives timezone- and locale-aware rendering for one owner.
// The engine treats it as an immutable snapshot per request; the settings
// surface owns mutation.
type UserPreferences struct {
	OwnerID     string
	Timezone    string
	StartOfWeek time.Weekday
	Locale      string
	UpdatedAt   time.Time
}

// DefaultPreferences returns the preferences applied before an owner has
// saved any: UTC, Monday week start, US English formatting.
func DefaultPreferences(ownerID string) *UserPreferences {
	return &UserPreferences{
		OwnerID:     ownerID,
		Timezone:    "UTC",
		StartOfWeek: time.Monday,
		Locale:      "en-US",
	}
}

// Location resolves the configured IANA timezone, falling back to UTC when
// the name does not load.
func (p *UserPreferences) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
