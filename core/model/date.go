package model

import (
	"fmt"
	"time"
)

// DateLayout is the wire representation of calendar dates.
const DateLayout = "2006-01-02"

// Date is a day-granular calendar date, normalized to midnight UTC.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses a date in the 2006-01-02 layout. Timestamps with a time
// component are accepted and truncated to their day.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateFromValue converts a store cell into a Date. Strings, time.Time and
// Date values are accepted.
func DateFromValue(v any) (Date, bool) {
	switch x := v.(type) {
	case Date:
		return x, true
	case time.Time:
		return DateOf(x), true
	case string:
		d, err := ParseDate(x)
		if err != nil {
			return Date{}, false
		}
		return d, true
	case []byte:
		d, err := ParseDate(string(x))
		if err != nil {
			return Date{}, false
		}
		return d, true
	default:
		return Date{}, false
	}
}

// String renders the date in the 2006-01-02 layout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to o. Negative when o is
// before d.
func (d Date) DaysUntil(o Date) int {
	return int(o.Sub(d.Time).Hours() / 24)
}
