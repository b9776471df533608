package models

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		amount   int64
		expected Category
	}{
		{500000, Inflow},
		{1, Inflow},
		{-1, Outflow},
		{-200000, Outflow},
		{0, Outflow},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.amount); got != tt.expected {
			t.Errorf("CategoryOf(%d): got %q, want %q", tt.amount, got, tt.expected)
		}
	}
}

func TestRowCellOutOfRange(t *testing.T) {
	row := Row{NewCell("a")}
	if row.Cell(5).Valid {
		t.Error("out-of-range cell should be null")
	}
	if row.Cell(-1).Valid {
		t.Error("negative index should be null")
	}
	if got := row.Cell(0).String(); got != "a" {
		t.Errorf("got %q", got)
	}
}
