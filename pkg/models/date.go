package models

import "time"

// DateLayout is the day-granularity format used for study dates
const DateLayout = "2006-01-02"

// FormatDate renders a time as a study date string
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a study date string into a midnight-UTC time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
