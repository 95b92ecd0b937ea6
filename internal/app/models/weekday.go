package models

import (
	"strings"
	"time"
	"unicode"
)

// Weekday is the internal day-of-week type. Locale day names only exist at
// the wire boundary; schedule lookups always go through this enum so a
// miscased backend key can never miss.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayDisplayNames = [...]string{
	Monday:    "Lundi",
	Tuesday:   "Mardi",
	Wednesday: "Mercredi",
	Thursday:  "Jeudi",
	Friday:    "Vendredi",
	Saturday:  "Samedi",
	Sunday:    "Dimanche",
}

// DisplayName returns the locale day name the clinic backend keys its
// schedules with.
func (w Weekday) DisplayName() string {
	if w < Monday || w > Sunday {
		return ""
	}
	return weekdayDisplayNames[w]
}

func (w Weekday) String() string {
	return w.DisplayName()
}

// ParseWeekdayName maps a locale day name to the internal enum. The input is
// canonicalized (first letter uppercase, remainder lowercase) before matching
// so "LUNDI", "lundi" and "Lundi" all resolve to the same day.
func ParseWeekdayName(name string) (Weekday, bool) {
	canonical := CanonicalDayName(name)
	for day, display := range weekdayDisplayNames {
		if display == canonical {
			return Weekday(day), true
		}
	}
	return 0, false
}

// WeekdayOfDate maps a calendar date to the internal weekday.
func WeekdayOfDate(date time.Time) Weekday {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// CanonicalDayName normalizes a day name to first-letter-uppercase,
// remainder-lowercase.
func CanonicalDayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
