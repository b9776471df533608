package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// PalmPay XLSX exports:
//
//	Time | Description | Amount | Status | Order No. | Balance
//
// Amount is one signed column with an explicit sign and the naira glyph
// ("+₦1,500.00"). Rows whose status is anything but "Successful" never hit
// the ledger, so they are dropped before column mapping.
var palmpayBank = &Bank{
	Code:       models.BankPalmPay,
	Name:       "PalmPay",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Narration, c.Signed = 0, 1, 2
		c.RawCategory, c.Reference, c.Balance = 3, 4, 5
		return c
	}(),
	DateLayouts: []string{
		"Jan 2, 2006 15:04:05",
		"2006-01-02 15:04:05",
		"02-01-2006 15:04",
	},
	Markers:   []string{"palmpay", "palmpay limited"},
	Normalize: palmpayNormalizeRow,
	Counterparty: []counterpartyRule{
		// "Transfer to OKECHUKWU NWOSU" / "Received from AISHA MOHAMMED".
		{
			pattern: regexp.MustCompile(`(?i)(?:transfer to|received from|payment to) ([A-Za-z .,'-]+?)(?: - |$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "OWealth AutoSave" and friends — product names, not parties.
		{
			pattern: regexp.MustCompile(`(?i)^(OWealth|CashBox)\b`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
	},
}

// palmpayNormalizeRow drops rows for failed or pending orders; their
// amounts never moved money.
func palmpayNormalizeRow(row models.Row) models.Row {
	if len(row) < 6 {
		return row
	}
	status := strings.ToLower(strings.TrimSpace(row.Cell(3).String()))
	if status != "" && status != "successful" && status != "success" {
		return models.Row{}
	}
	return row
}

func init() { register(palmpayBank) }
