package contract

import (
	"fmt"
	"time"
)

// dateOnlyFormat is the plain day format accepted on --start and --end.
const dateOnlyFormat = "2006-01-02"

// ParseDateBound parses a user-provided date string into a window bound.
// A plain YYYY-MM-DD value expands to the first instant of that day for a
// start bound and the last whole second of that day for an end bound, so day
// windows stay inclusive on both ends. Full ISO8601 timestamps pass through.
func ParseDateBound(s string, end bool) (time.Time, error) {
	if t, err := time.Parse(dateOnlyFormat, s); err == nil {
		if end {
			return t.Add(24*time.Hour - time.Second), nil
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseCreationTime parses a record's creation timestamp. Tracker exports are
// inconsistent here, so several layouts are tried in order.
func ParseCreationTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		dateOnlyFormat,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized creation time %q", s)
}
