package reader

import (
	"testing"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		expected Kind
	}{
		{"statement.pdf", KindPDF},
		{"Statement.PDF", KindPDF},
		{"export.xlsx", KindXLSX},
		{"legacy.xls", KindXLS},
		{"export.csv", KindDelimited},
		{"export.tsv", KindDelimited},
		{"dump.txt", KindDelimited},
		{"archive.zip", KindUnknown},
		{"noextension", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := DetectKind(tt.filename); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestReadGridRejectsUnknownKind(t *testing.T) {
	if _, err := ReadGrid([]byte("data"), KindPDF); err == nil {
		t.Error("expected error for pdf kind")
	}
	if _, err := ReadGrid([]byte("data"), KindUnknown); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestReadDelimitedComma(t *testing.T) {
	data := []byte("Date,Narration,Debit,Credit,Balance\n15/01/2024,NIP TRANSFER,,5000.00,15000.00\n")
	rows, err := readDelimited(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[1].Cell(1).String(); got != "NIP TRANSFER" {
		t.Errorf("narration: got %q", got)
	}
	// Blank columns come back as null cells.
	if rows[1].Cell(2).Valid {
		t.Error("empty debit cell should be null")
	}
	if got := rows[1].Cell(3).String(); got != "5000.00" {
		t.Errorf("credit: got %q", got)
	}
}

func TestReadDelimitedSniffsSemicolon(t *testing.T) {
	data := []byte("Date;Narration;Amount\n15/01/2024;TRF, WITH COMMA;5000.00\n")
	rows, err := readDelimited(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows[0]) != 3 {
		t.Fatalf("got %d columns, want 3", len(rows[0]))
	}
	if got := rows[1].Cell(1).String(); got != "TRF, WITH COMMA" {
		t.Errorf("got %q", got)
	}
}

func TestReadDelimitedSniffsTabs(t *testing.T) {
	data := []byte("Date\tNarration\tAmount\n15/01/2024\tTRF\t5000.00\n")
	rows, err := readDelimited(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rows[1].Cell(2).String(); got != "5000.00" {
		t.Errorf("got %q", got)
	}
}

func TestReadDelimitedRaggedRows(t *testing.T) {
	// Bank exports mix metadata lines with transaction rows; field counts
	// differ per record and must not error.
	data := []byte("Access Bank Statement\nDate,Narration,Debit,Credit,Balance\n15/01/2024,TRF,,5000.00,15000.00\n")
	rows, err := readDelimited(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestReadXLSXRejectsGarbage(t *testing.T) {
	if _, err := readXLSX([]byte("not a zip archive")); err == nil {
		t.Error("expected error for non-xlsx bytes")
	}
}

func TestReadXLSRejectsGarbage(t *testing.T) {
	if _, err := readXLS([]byte("not an ole2 container")); err == nil {
		t.Error("expected error for non-xls bytes")
	}
}
