package engine

import (
	"time"

	"github.com/NicoEre03/habit-tracker/internal/storage"
)

// ParseDate parses a YYYY-MM-DD column date as a UTC midnight instant.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(storage.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func FormatDate(t time.Time) string {
	return t.Format(storage.DateFormat)
}

// DateOf strips the time component, keeping only the UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
