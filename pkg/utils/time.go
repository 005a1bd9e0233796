package utils

import "time"

// ISO8601Millis is the UTC timestamp layout used in responses,
// e.g. 2024-05-01T12:30:45.123Z
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// NowISO8601 returns the current UTC time with millisecond precision
func NowISO8601() string {
	return FormatISO8601(time.Now())
}

// FormatISO8601 formats t in UTC with millisecond precision
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}
