// utils/dates.go
package utils

import (
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"
const brDateLayout = "02/01/2006"

// ParseFlexibleDate parses a stored date string. Records written before date
// normalization may carry the localized DD/MM/YYYY form; everything written
// through the current API is ISO YYYY-MM-DD. The slash form is always read
// day-first (pt-BR locale of the stored data).
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.Contains(s, "/") {
		t, err := time.Parse(brDateLayout, s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	// Tolerate a trailing time component on ISO timestamps.
	if len(s) > len(isoDateLayout) {
		s = s[:len(isoDateLayout)]
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeDate rewrites a parseable date to ISO YYYY-MM-DD at the write
// boundary. Unparseable or placeholder values pass through unchanged so the
// caller never loses user input.
func NormalizeDate(s string) string {
	t, ok := ParseFlexibleDate(s)
	if !ok {
		return s
	}
	return t.Format(isoDateLayout)
}

// FormatDateBR renders a timestamp the way timeline entries historically
// stored it.
func FormatDateBR(t time.Time) string {
	return t.Format(brDateLayout)
}

// FormatDateISO renders the canonical stored date form.
func FormatDateISO(t time.Time) string {
	return t.Format(isoDateLayout)
}
