package parser

import (
	"testing"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

const zenithStatement = `Zenith Bank Plc
Opening Balance 100,000.00
02/03/2023 NIP/CHUKWUDI EZE/UBA 12,500.00 87,500.00
Ref: 000013230302
Send to MARYAM BELLO
03/03/2023 5,000.00 82,500.00
04/03/2023 Interest earned 120.50 82,620.50`

func TestMergeZenithLines(t *testing.T) {
	entries := mergeZenithLines(zenithStatement)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(entries), entries)
	}

	// The Ref line is a backward continuation of the first entry.
	if entries[0] != "02/03/2023 NIP/CHUKWUDI EZE/UBA 12,500.00 87,500.00 Ref: 000013230302" {
		t.Errorf("entry 0: got %q", entries[0])
	}

	// "Send to ..." prints above its own date line and must attach forward.
	if entries[1] != "03/03/2023 Send to MARYAM BELLO 5,000.00 82,500.00" {
		t.Errorf("entry 1: got %q", entries[1])
	}
}

func TestReconstructZenith(t *testing.T) {
	rows := reconstructZenith(zenithStatement)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// 100,000 - 12,500 = 87,500 → debit.
	if got := rows[0].Cell(2).String(); got != "12500.00" {
		t.Errorf("row 0 debit: got %q", got)
	}
	// 87,500 - 5,000 = 82,500 → debit.
	if got := rows[1].Cell(2).String(); got != "5000.00" {
		t.Errorf("row 1 debit: got %q", got)
	}
	if got := rows[1].Cell(1).String(); got != "Send to MARYAM BELLO" {
		t.Errorf("row 1 narration: got %q", got)
	}
	// 82,500 + 120.50 = 82,620.50 → credit.
	if got := rows[2].Cell(3).String(); got != "120.50" {
		t.Errorf("row 2 credit: got %q", got)
	}
}

func TestZenithEndToEnd(t *testing.T) {
	p := testParser()
	transactions, err := p.ParseText(zenithStatement, models.BankZenith, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(transactions))
	}

	if transactions[0].Amount != -1250000 {
		t.Errorf("txn 0 amount: got %d", transactions[0].Amount)
	}
	if transactions[0].Meta.Counterparty == nil || transactions[0].Meta.Counterparty.Name != "CHUKWUDI EZE" {
		t.Errorf("txn 0 counterparty: got %+v", transactions[0].Meta.Counterparty)
	}
	if transactions[0].Meta.Counterparty != nil && transactions[0].Meta.Counterparty.Bank != "UBA" {
		t.Errorf("txn 0 counterparty bank: got %q", transactions[0].Meta.Counterparty.Bank)
	}

	if transactions[1].Meta.Counterparty == nil || transactions[1].Meta.Counterparty.Name != "MARYAM BELLO" {
		t.Errorf("txn 1 counterparty: got %+v", transactions[1].Meta.Counterparty)
	}

	if transactions[2].Amount != 12050 {
		t.Errorf("txn 2 amount: got %d", transactions[2].Amount)
	}
	if transactions[2].Meta.Type != models.TypeInterest {
		t.Errorf("txn 2 type: got %q", transactions[2].Meta.Type)
	}
}
