package parser

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		layouts  []string
		expected time.Time
		ok       bool
	}{
		{
			name:     "day-month-year",
			input:    "15-Jan-2024",
			layouts:  []string{"02-Jan-2006"},
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "shouted month normalized",
			input:    "15-JAN-2024",
			layouts:  []string{"02-Jan-2006"},
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "two-digit year resolves to 2000s",
			input:    "04-Mar-23",
			layouts:  []string{"02-Jan-06"},
			expected: time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "go default century corrected",
			input:    "04/03/99",
			layouts:  []string{"02/01/06"},
			expected: time.Date(2099, 3, 4, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "twelve hour clock noon",
			input:    "02/01/2024 12:30 PM",
			layouts:  []string{"02/01/2006 03:04 PM"},
			expected: time.Date(2024, 1, 2, 12, 30, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "twelve hour clock midnight",
			input:    "02/01/2024 12:05 AM",
			layouts:  []string{"02/01/2006 03:04 PM"},
			expected: time.Date(2024, 1, 2, 0, 5, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "collapsed whitespace",
			input:    "  15-Jan-2024  ",
			layouts:  []string{"02-Jan-2006"},
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:    "second layout tried",
			input:   "2/1/2024",
			layouts: []string{"02-Jan-2006", "2/1/2006"},
			expected: time.Date(2024, 1, 2, 0, 0, 0, 0,
				time.UTC),
			ok: true,
		},
		{name: "empty", input: "", layouts: []string{"02-Jan-2006"}, ok: false},
		{name: "garbage", input: "not a date", layouts: []string{"02-Jan-2006"}, ok: false},
		{name: "no layouts", input: "15-Jan-2024", layouts: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input, tt.layouts...)
			if ok != tt.ok {
				t.Fatalf("ok=%v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
