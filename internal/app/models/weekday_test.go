package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekdayName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Weekday
		ok       bool
	}{
		{"canonical form", "Lundi", Monday, true},
		{"all lowercase", "lundi", Monday, true},
		{"all uppercase", "DIMANCHE", Sunday, true},
		{"mixed case", "mArDi", Tuesday, true},
		{"surrounding whitespace", "  Vendredi ", Friday, true},
		{"unknown day", "Funday", 0, false},
		{"empty", "", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			weekday, ok := ParseWeekdayName(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, weekday)
			}
		})
	}
}

func TestWeekdayOfDate(t *testing.T) {
	// 2024-01-01 was a Monday.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expected := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

	for i, weekday := range expected {
		date := start.AddDate(0, 0, i)
		assert.Equal(t, weekday, WeekdayOfDate(date), "offset %d", i)
	}
}

func TestWeekdayDisplayName(t *testing.T) {
	assert.Equal(t, "Lundi", Monday.DisplayName())
	assert.Equal(t, "Dimanche", Sunday.DisplayName())
	assert.Equal(t, "", Weekday(42).DisplayName())
}

func TestCanonicalDayName(t *testing.T) {
	assert.Equal(t, "Lundi", CanonicalDayName("LUNDI"))
	assert.Equal(t, "Lundi", CanonicalDayName("lundi"))
	assert.Equal(t, "Lundi", CanonicalDayName(" lundi "))
	assert.Equal(t, "", CanonicalDayName("   "))
}
