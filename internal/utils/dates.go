package utils

import (
	"time"
)

// dateLayouts lists the timestamp shapes the backend emits, most specific
// first. Date-only values are common on older records.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a loosely-formatted date string. It never fails hard:
// empty or unparseable input yields ok == false and callers are expected to
// skip the value rather than abort the whole computation.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDay renders a time as its local calendar day, yyyy-MM-dd.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay truncates a time to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay normalizes a time to 23:59:59.999 local, so that inclusive
// range checks admit anything on that calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

// IsWithinRange reports whether d falls inside the inclusive [from, to]
// range. Either bound may be empty or unparseable, in which case that side
// is unbounded. The to bound is normalized to end-of-day before comparison.
// A zero d is never in range.
func IsWithinRange(d time.Time, fromStr, toStr string) bool {
	if d.IsZero() {
		return false
	}
	if from, ok := ParseDate(fromStr); ok {
		if d.Before(from) {
			return false
		}
	}
	if to, ok := ParseDate(toStr); ok {
		if d.After(EndOfDay(to)) {
			return false
		}
	}
	return true
}

// ElapsedBusinessDays counts the weekday boundaries crossed between start
// and end: the number of Mon-Fri calendar days in [start, end). A Monday
// borrow returned the following Monday spans 5 business days; same-day is 0.
// The count is negative when end precedes start.
func ElapsedBusinessDays(start, end time.Time) int {
	sign := 1
	if end.Before(start) {
		start, end = end, start
		sign = -1
	}

	s := StartOfDay(start)
	e := StartOfDay(end)

	count := 0
	for d := s; d.Before(e); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return sign * count
}
