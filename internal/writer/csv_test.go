package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

func kobo(v int64) *int64 { return &v }

func TestCSVWriter_Write(t *testing.T) {
	transactions := []models.Transaction{
		{
			ID:          "gtbank_1x2y3z",
			Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Description: "TRANSFER FROM ADEBAYO OLA/NIP",
			Amount:      2599900,
			Category:    models.Inflow,
			BankSource:  models.BankGTBank,
			Reference:   "20240115-TRANSFERFROMADEBAYOOLA",
			Meta: &models.Meta{
				Type:         models.TypeTransfer,
				BalanceAfter: kobo(12345600),
			},
		},
		{
			ID:          "gtbank_4a5b6c",
			Date:        time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			Description: "POS PURCHASE SHOPRITE",
			Amount:      -500000,
			Category:    models.Outflow,
			BankSource:  models.BankGTBank,
			Meta:        &models.Meta{Type: models.TypeCard},
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	if err := w.Write(&buf, models.BankGTBank, transactions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "# Bank,gtbank") {
		t.Error("expected bank metadata header")
	}
	if !strings.Contains(output, "# Period,2024-01-15 to 2024-01-16") {
		t.Error("expected statement period metadata")
	}
	if !strings.Contains(output, "ID,Date,Description,Type,Category,Amount,Balance,Reference") {
		t.Error("expected column headers")
	}
	if !strings.Contains(output, "25999.00") {
		t.Error("expected amount in naira with two decimals")
	}
	if !strings.Contains(output, "-5000.00") {
		t.Error("expected signed outflow amount")
	}
	if !strings.Contains(output, "123456.00") {
		t.Error("expected balance column")
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	// 3 metadata lines + 1 header + 2 transactions
	if len(lines) != 6 {
		t.Errorf("expected 6 lines, got %d", len(lines))
	}
}

func TestCSVWriter_WriteNoHeader(t *testing.T) {
	transactions := []models.Transaction{
		{
			ID:          "kuda_9f8e7d",
			Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Description: "Transfer to CHIDI OKAFOR",
			Amount:      -1000000,
			Category:    models.Outflow,
			BankSource:  models.BankKuda,
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	if err := w.Write(&buf, models.BankKuda, transactions); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "# Bank") {
		t.Error("should not have bank metadata when header=false")
	}
	if !strings.Contains(output, "ID,Date,Description,Type,Category,Amount,Balance,Reference") {
		t.Error("expected column headers even without metadata")
	}
	// Missing balance comes out as an empty column, not 0.00.
	if strings.Contains(output, "0.00,") && strings.Contains(output, ",0.00,") {
		t.Error("missing balance should be empty, not zero")
	}
}
