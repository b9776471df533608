package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// OPay CSV exports:
//
//	Transaction Time | Transaction Type | Counterparty | Amount | Balance | Transaction No.
//
// Amount is a single signed column ("+1,500.00" / "-2,000.00") rather than
// a debit/credit pair, and the transaction type column is OPay's own label
// ("Transfer to Bank", "Airtime Purchase"), kept as the raw category.
var opayBank = &Bank{
	Code:       models.BankOPay,
	Name:       "OPay",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.RawCategory, c.Counterparty = 0, 1, 2
		c.Signed, c.Balance, c.Reference = 3, 4, 5
		return c
	}(),
	DateLayouts: []string{
		"2006-01-02 15:04:05",
		"Jan 2, 2006 15:04:05",
		"02/01/2006 15:04",
	},
	Markers: []string{"opay", "paycom", "opay digital services"},
	// The counterparty column sometimes packs "NAME | BANK | ACCOUNT".
	Normalize: opayNormalizeRow,
	Counterparty: []counterpartyRule{
		// "Transfer to Bank TOLULOPE ADEBAYO (Moniepoint)" — party then bank.
		{
			pattern: regexp.MustCompile(`\b([A-Z][A-Z .,'-]{2,}) \(([A-Za-z0-9 ]+)\)\s*$`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[2]}
			},
		},
	},
}

// opayNormalizeRow rebuilds the narration cell OPay omits: the raw export
// has no free-text description, so type + counterparty stand in for one.
func opayNormalizeRow(row models.Row) models.Row {
	if len(row) < 6 {
		return row
	}

	// "NAME | BANK | ACCOUNT" packed counterparty cells → keep the name in
	// the counterparty column and surface the rest in the narration.
	counterparty := row.Cell(2).String()
	narration := strings.TrimSpace(row.Cell(1).String())
	if parts := strings.Split(counterparty, "|"); len(parts) >= 2 {
		counterparty = strings.TrimSpace(parts[0])
		row[2] = models.NewCell(counterparty)
	}
	if counterparty != "" {
		narration += " " + counterparty
	}

	out := make(models.Row, 7)
	copy(out, row)
	out[6] = models.NewCell(narration)
	return out
}

func init() {
	// Narration lives in the synthetic trailing cell opayNormalizeRow adds.
	opayBank.Columns.Narration = 6
	register(opayBank)
}
