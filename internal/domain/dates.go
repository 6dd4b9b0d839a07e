package domain

import "time"

// DateOnly drops the clock part and normalizes to UTC midnight of the same
// calendar day, so dates read from a DATE column and "today" computed in the
// service time zone compare by calendar day only.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBookableDate reports whether date can be picked in the wizard:
// strictly after today and not on the excluded weekday.
func IsBookableDate(date, now time.Time) bool {
	day := DateOnly(date)
	return day.After(DateOnly(now)) && day.Weekday() != ExcludedWeekday
}

// FirstBookableDate returns the earliest date IsBookableDate accepts
func FirstBookableDate(now time.Time) time.Time {
	day := DateOnly(now).AddDate(0, 0, 1)
	for day.Weekday() == ExcludedWeekday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
