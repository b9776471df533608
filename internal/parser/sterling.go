package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Sterling Bank XLSX exports:
//
//	Trans Date | Value Date | Reference | Narration | Debit | Credit | Balance
//
// Dates use a two-digit year ("04-Mar-23"), which always resolves to the
// 2000s.
var sterlingBank = &Bank{
	Code:       models.BankSterling,
	Name:       "Sterling Bank",
	MinColumns: 7,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.ValueDate, c.Reference, c.Narration = 0, 1, 2, 3
		c.Debit, c.Credit, c.Balance = 4, 5, 6
		return c
	}(),
	DateLayouts: []string{"02-Jan-06", "02-Jan-2006", "02/01/06"},
	Markers:     []string{"sterling bank", "sterling.ng", "onebank"},
	Counterparty: []counterpartyRule{
		// "NIP/KASTLE/STANBIC/FUNMILAYO OGUNDIPE/invoice 114".
		{
			pattern: regexp.MustCompile(`(?i)^NIP/\w+/([A-Z]{2,12})/([A-Za-z .,'-]+?)(?:/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Bank: m[1], Name: m[2]}
			},
		},
		// "FT/0045678912/EMEKA OBIANO" — intrabank fund transfer.
		{
			pattern: regexp.MustCompile(`(?i)^FT[/-](\d{10})[/-]([A-Za-z .,'-]+)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{AccountNumber: m[1], Name: m[2]}
			},
		},
	},
}

func init() { register(sterlingBank) }
