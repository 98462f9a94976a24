// Package dates handles the text date formats the schema stores: YYYY-MM-DD
// for days and YYYY-MM for months.
package dates

import (
	"fmt"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseMonth validates a YYYY-MM month string. Anything else is a parse
// error, never a silent default.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return t, nil
}

// MonthLabel renders a YYYY-MM month string as "January 2006" for display
func MonthLabel(s string) (string, error) {
	t, err := ParseMonth(s)
	if err != nil {
		return "", err
	}
	return t.Format("January 2006"), nil
}

// ParseDay validates a YYYY-MM-DD date string
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// Today returns the current local date as YYYY-MM-DD
func Today() string {
	return time.Now().Format(DayLayout)
}

// CurrentMonth returns the current local month as YYYY-MM
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}
