package domain

import (
	"fmt"
	"strings"
	"time"
)

type WeekDirection string

const (
	WeekCurrent  WeekDirection = "current"
	WeekPrevious WeekDirection = "previous"
	WeekNext     WeekDirection = "next"
)

// ValidWeekDirections is the canonical set of accepted direction strings.
var ValidWeekDirections = map[string]bool{
	"current": true, "previous": true, "next": true,
}

// ParseWeekday maps a lowercase English weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", name)
}
