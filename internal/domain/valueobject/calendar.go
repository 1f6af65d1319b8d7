// Package valueobject contains domain value objects for the expense ledger.
package valueobject

import (
	"strings"
	"time"

	domainerror "github.com/expense-ledger/backend/internal/domain/error"
)

const (
	// DateLayout is the canonical storage form of an expense date.
	DateLayout = "2006-01-02"
	// MonthLayout is the canonical storage form of a budget or summary month.
	MonthLayout = "2006-01"
)

// dateLayouts are the accepted input forms, tried in order.
var dateLayouts = []string{
	DateLayout,
	"2006-1-2",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate validates a date string and returns it in canonical YYYY-MM-DD form.
// Month prefix filtering relies on every stored date being canonical.
func ParseDate(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainerror.ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", domainerror.ErrInvalidDate
}

// ParseMonth validates a month string and returns it in canonical YYYY-MM form.
func ParseMonth(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainerror.ErrInvalidMonth
	}
	for _, layout := range []string{MonthLayout, "2006-1"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(MonthLayout), nil
		}
	}
	return "", domainerror.ErrInvalidMonth
}

// MonthOf returns the YYYY-MM prefix of a canonical date.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return ""
	}
	return date[:len(MonthLayout)]
}

// InMonth reports whether a canonical date falls in a canonical month.
func InMonth(date, month string) bool {
	if month == "" || MonthOf(date) != month {
		return false
	}
	return len(date) > len(month) && date[len(month)] == '-'
}

// Today returns t's calendar date in canonical form.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// CurrentMonth returns t's month in canonical form.
func CurrentMonth(t time.Time) string {
	return t.Format(MonthLayout)
}
