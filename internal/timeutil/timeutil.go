package timeutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Display layouts used on widget cards.
const (
	DayLayout  = "Mon Jan 02"
	TimeLayout = "3:04 PM"
)

// ErrNoTimestamp is returned when a value cannot be read as an upstream timestamp.
var ErrNoTimestamp = errors.New("unparseable timestamp")

// Offset-carrying layouts are tried first; naive layouts are read as UTC.
var (
	offsetLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04-07:00"}
	naiveLayouts  = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04", "2006-01-02 15:04:05", DateLayout}
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseUpstreamTimestamp reads an ISO-8601 timestamp as sent by the league API.
// A trailing "Z" means UTC, and values without an offset are taken as UTC.
// The result is converted to loc when loc is non-nil.
func ParseUpstreamTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrNoTimestamp
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return in(t, loc), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return in(t, loc), nil
		}
	}
	return time.Time{}, ErrNoTimestamp
}

func in(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// LoadLocation returns a location for a tz name, falling back to UTC when unknown.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}
