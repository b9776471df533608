// Package writer serializes normalized transactions for download. JSON is
// the API's native shape; CSV is here for spreadsheet users.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/prettyirrelevant/wakaru/internal/models"
	"github.com/prettyirrelevant/wakaru/internal/parser"
)

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, bank models.BankCode, transactions []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, bank, transactions)
}

// Write writes transactions in CSV format to the given writer. Amounts
// come out in naira with two decimals; the signed amount already encodes
// direction, and the category column repeats it for filtering.
func (w *CSVWriter) Write(out io.Writer, bank models.BankCode, transactions []models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		if bank != "" {
			writer.Write([]string{"# Bank", string(bank)})
		}
		writer.Write([]string{"# Transactions", fmt.Sprintf("%d", len(transactions))})
		if period := statementPeriod(transactions); period != "" {
			writer.Write([]string{"# Period", period})
		}
	}

	header := []string{"ID", "Date", "Description", "Type", "Category", "Amount", "Balance", "Reference"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		balance, txnType := "", ""
		if txn.Meta != nil {
			txnType = string(txn.Meta.Type)
			if txn.Meta.BalanceAfter != nil {
				balance = parser.FormatKobo(*txn.Meta.BalanceAfter)
			}
		}
		row := []string{
			txn.ID,
			txn.Date.Format("2006-01-02 15:04:05"),
			txn.Description,
			txnType,
			string(txn.Category),
			parser.FormatKobo(txn.Amount),
			balance,
			txn.Reference,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func statementPeriod(transactions []models.Transaction) string {
	if len(transactions) == 0 {
		return ""
	}
	first, last := transactions[0].Date, transactions[0].Date
	for _, txn := range transactions[1:] {
		if txn.Date.Before(first) {
			first = txn.Date
		}
		if txn.Date.After(last) {
			last = txn.Date
		}
	}
	const layout = "2006-01-02"
	return first.Format(layout) + " to " + last.Format(layout)
}
