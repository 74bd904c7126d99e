package aggregation

import (
	"time"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

// MonthKey returns the "YYYY-MM" bucket of t, using t's own calendar fields.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// CurrentMonth returns the bucket containing now.
func CurrentMonth(now time.Time) string {
	return MonthKey(now)
}

// ValidMonth reports whether s is a well formed "YYYY-MM" bucket.
func ValidMonth(s string) bool {
	if len(s) != len(monthKeyLayout) {
		return false
	}
	_, err := time.Parse(monthKeyLayout, s)
	return err == nil
}

// MonthLabel returns the human label of t's month, e.g. "Jan 2025".
func MonthLabel(t time.Time) string {
	return t.Format(monthLabelLayout)
}
