package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date without time of day or time zone.
// The zero value means "no date selected".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized Date (overflowing days roll into the next month, as time.Date does)
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string. Empty input yields the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero returns true if no date is set
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the YYYY-MM-DD form, or "" for the zero Date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

// Weekday returns the day of the week (Sunday = 0)
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days later (n may be negative)
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// WeekStart returns the Monday of the week containing d.
// Sunday belongs to the week that started six days earlier.
func (d Date) WeekStart() Date {
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += DaysInWeek
	}
	return d.AddDays(-offset)
}
