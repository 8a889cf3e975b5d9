package web

import (
	"github.com/goodsign/monday"

	"github.com/m04kA/BaccalaMarket/internal/domain"
)

const locale = monday.LocaleItIT

// longDate "giovedì 12 giugno"
func longDate(d domain.Date) string {
	if d.IsZero() {
		return ""
	}
	return monday.Format(d.Time(), "Monday 2 January", locale)
}

// shortWeekday "gio"
func shortWeekday(d domain.Date) string {
	return monday.Format(d.Time(), "Mon", locale)
}

// monthYear "giugno 2025"
func monthYear(d domain.Date) string {
	return monday.Format(d.Time(), "January 2006", locale)
}
