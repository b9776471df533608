package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Kuda XLSX exports:
//
//	Date/Time | Description | Category | Money In | Money Out | To / From | Balance
//
// The date cell embeds a 12-hour clock ("14/03/2023 02:15 PM"); the
// standard noon/midnight rules apply when converting. Kuda also ships its
// own category column, preserved verbatim as the raw category.
var kudaBank = &Bank{
	Code:       models.BankKuda,
	Name:       "Kuda Microfinance Bank",
	MinColumns: 5,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Narration, c.RawCategory = 0, 1, 2
		c.Credit, c.Debit, c.Counterparty, c.Balance = 3, 4, 5, 6
		return c
	}(),
	DateLayouts: []string{
		"02/01/2006 03:04 PM",
		"02/01/2006 03:04:05 PM",
		"02/01/2006",
	},
	Markers: []string{"kuda microfinance", "kuda bank", "kudabank"},
	Counterparty: []counterpartyRule{
		// "Transfer from ADAEZE OBI to ..." — sender named inline.
		{
			pattern: regexp.MustCompile(`(?i)transfer (?:from|to) ([A-Za-z .,'-]+?)(?: - |:|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "NIP Transfer: YUSUF ABDULLAHI/GTBank/0123456789".
		{
			pattern: regexp.MustCompile(`(?i)NIP Transfer: ([A-Za-z .,'-]+?)/([A-Za-z ]+?)/(\d{10})`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[2], AccountNumber: m[3]}
			},
		},
	},
}

func init() { register(kudaBank) }
