package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-05", "2024-01-05", true},
		{"05/01/2024", "2024-01-05", true}, // day-first
		{"2024-01-05T14:30:00Z", "2024-01-05", true},
		{" 2024-01-05 ", "2024-01-05", true},
		{"", "", false},
		{"A definir", "", false},
		{"13/13/2024", "", false},
		{"not-a-date", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseFlexibleDate(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			require.Equal(t, tc.want, got.Format("2006-01-02"), "input %q", tc.in)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-01-05", NormalizeDate("05/01/2024"))
	assert.Equal(t, "2024-01-05", NormalizeDate("2024-01-05"))
	// Unparseable input passes through untouched.
	assert.Equal(t, "A definir", NormalizeDate("A definir"))
	assert.Equal(t, "", NormalizeDate(""))
}

func TestFormatDateBR(t *testing.T) {
	d := time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "10/01/2024", FormatDateBR(d))
	assert.Equal(t, "2024-01-10", FormatDateISO(d))
}
