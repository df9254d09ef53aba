package format

import "golang.org/x/text/language"

// localeSpec carries the data that drives locale-aware rendering: the hour
// cycle and the date token order. Translated month and weekday names belong
// to the caller's string catalog, not to this package; layouts here use the
// platform's English names as placeholders for the catalog to substitute.
type localeSpec struct {
	clock   string // time-of-day layout; "3:04 PM" marks a 12-hour cycle
	heading string // weekday + date heading layout
	monthDay string // short month-day layout for range labels
	year    string // year suffix layout for range labels
	instant string // full date-time layout
}

var localeTags = []language.Tag{
	language.AmericanEnglish, // also the fallback
	language.BritishEnglish,
	language.German,
	language.French,
	language.Japanese,
}

var localeSpecs = []localeSpec{
	{clock: "3:04 PM", heading: "Monday, Jan 2", monthDay: "Jan 2", year: ", 2006", instant: "Jan 2, 2006 3:04 PM"},
	{clock: "15:04", heading: "Monday 2 Jan", monthDay: "2 Jan", year: " 2006", instant: "2 Jan 2006 15:04"},
	{clock: "15:04", heading: "Monday, 02.01.", monthDay: "02.01.", year: "2006", instant: "02.01.2006 15:04"},
	{clock: "15:04", heading: "Monday 2 Jan", monthDay: "2 Jan", year: " 2006", instant: "2 Jan 2006 15:04"},
	{clock: "15:04", heading: "1月2日 Monday", monthDay: "1月2日", year: " 2006年", instant: "2006年1月2日 15:04"},
}

var localeMatcher = language.NewMatcher(localeTags)

// resolve maps a BCP-47 locale string to the closest supported spec,
// falling back to en-US for unknown or malformed tags.
func resolve(locale string) localeSpec {
	tag, err := language.Parse(locale)
	if err != nil {
		return localeSpecs[0]
	}
	_, index, _ := localeMatcher.Match(tag)
	return localeSpecs[index]
}

// TwelveHour reports whether the locale renders a 12-hour clock.
func TwelveHour(locale string) bool {
	return resolve(locale).clock == "3:04 PM"
}
