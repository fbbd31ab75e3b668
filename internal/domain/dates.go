package domain

import "time"

// DateLayout is the wire format for all business dates. Time of day is never
// meaningful on a trade; everything is normalized to UTC midnight.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD wire string. Empty input stays nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date back to its YYYY-MM-DD wire form.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// Date builds a UTC-midnight date value, mostly for tests and fixtures.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
