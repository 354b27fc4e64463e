package contract

import (
	"testing"
)

// FuzzParseDateBound fuzzes the window bound parser with arbitrary inputs.
func FuzzParseDateBound(f *testing.F) {
	seeds := []string{
		"2019-03-15",
		"2019-03-15T08:30:00Z",
		"0000-01-01",
		"not a date",
		"",
	}
	for _, s := range seeds {
		f.Add(s, false)
		f.Add(s, true)
	}

	f.Fuzz(func(t *testing.T, s string, _ bool) {
		start, err := ParseDateBound(s, false)
		if err != nil {
			return
		}
		// An end bound for the same day never precedes its start bound.
		endBound, err := ParseDateBound(s, true)
		if err == nil && endBound.Before(start) {
			t.Errorf("ParseDateBound(%q) end bound %v precedes start bound %v", s, endBound, start)
		}
	})
}

// FuzzParseCreationTime fuzzes the creation time parser with arbitrary inputs.
func FuzzParseCreationTime(f *testing.F) {
	seeds := []string{
		"2019-03-15T08:30:00Z",
		"2019-03-15 08:30:00",
		"2019-03-15",
		"garbage",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseCreationTime(s)
	})
}
