package extractor

import (
	"strings"
	"testing"
)

func TestIsReadableText(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected bool
	}{
		{
			name:     "statement text",
			pages:    []string{"Guaranty Trust Bank statement of account. Opening balance 100,000.00 with NIP transfer credit and debit entries across the period."},
			expected: true,
		},
		{
			name:     "too short",
			pages:    []string{"bank"},
			expected: false,
		},
		{
			name:     "binary garbage",
			pages:    []string{strings.Repeat("\x8f\xe2\x91\x01", 100)},
			expected: false,
		},
		{
			name:     "readable but meaningless",
			pages:    []string{strings.Repeat("xqzj wvkp ghrtm ", 20)},
			expected: false,
		},
		{
			name:     "naira glyph counts as readable",
			pages:    []string{"Account statement opening balance " + strings.Repeat("₦1,500.00 NIP transfer ", 10)},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isReadableText(tt.pages); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTextQuality(t *testing.T) {
	if q := textQuality([]string{"plain ascii text 123.45"}); q != 1.0 {
		t.Errorf("clean text quality: got %f, want 1.0", q)
	}
	if q := textQuality(nil); q != 0 {
		t.Errorf("empty quality: got %f, want 0", q)
	}
	if q := textQuality([]string{strings.Repeat("\x8f\xe2", 50)}); q > 0.5 {
		t.Errorf("garbage quality too high: %f", q)
	}
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	if _, err := ExtractText([]byte("not a pdf at all"), ""); err == nil {
		t.Error("expected error for non-pdf bytes")
	}
}
