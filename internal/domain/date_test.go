package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.June, Day: 12}, d)
	assert.Equal(t, "2025-06-12", d.String())
	assert.Equal(t, time.Thursday, d.Weekday())

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
	assert.Equal(t, "", empty.String())

	_, err = ParseDate("12/06/2025")
	assert.Error(t, err)
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	rome := time.FixedZone("CEST", 2*60*60)
	late := time.Date(2025, time.June, 12, 23, 59, 0, 0, rome)
	assert.Equal(t, NewDate(2025, time.June, 12), DateOf(late))
}

func TestDate_WeekStart(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Date
	}{
		{"monday stays", NewDate(2025, time.June, 9), NewDate(2025, time.June, 9)},
		{"thursday", NewDate(2025, time.June, 12), NewDate(2025, time.June, 9)},
		{"saturday", NewDate(2025, time.June, 14), NewDate(2025, time.June, 9)},
		{"sunday belongs to previous week", NewDate(2025, time.June, 15), NewDate(2025, time.June, 9)},
		{"across month boundary", NewDate(2025, time.July, 2), NewDate(2025, time.June, 30)},
		{"across year boundary", NewDate(2026, time.January, 1), NewDate(2025, time.December, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.date.WeekStart()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2025, time.June, 11)
	b := NewDate(2025, time.June, 12)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
	assert.True(t, b.After(a))
	assert.Equal(t, b, a.AddDays(1))
	assert.Equal(t, NewDate(2025, time.May, 31), NewDate(2025, time.June, 1).AddDays(-1))
}
