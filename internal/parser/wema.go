package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Wema/ALAT delimited exports:
//
//	Date | Reference | Narration | Debit | Credit | Balance | Session ID
//
// Dates use DD/MM/YY with a two-digit year. The NIBSS session identifier
// rides along in the last column and is kept in the metadata.
var wemaBank = &Bank{
	Code:       models.BankWema,
	Name:       "Wema Bank",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Reference, c.Narration = 0, 1, 2
		c.Debit, c.Credit, c.Balance, c.SessionID = 3, 4, 5, 6
		return c
	}(),
	DateLayouts: []string{"02/01/06", "02/01/2006", "02-01-2006"},
	Markers:     []string{"wema bank", "alat by wema", "wemabank"},
	Counterparty: []counterpartyRule{
		// "NIP TRANSFER FROM TEMITOPE BAKARE/UBA".
		{
			pattern: regexp.MustCompile(`(?i)NIP TRANSFER (?:FROM|TO) ([A-Za-z .,'-]+?)/([A-Z]{2,12})`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[2]}
			},
		},
		// "ALAT TRF/0229876543/HALIMA USMAN".
		{
			pattern: regexp.MustCompile(`(?i)ALAT TRF/(\d{10})/([A-Za-z .,'-]+)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{AccountNumber: m[1], Name: m[2]}
			},
		},
	},
}

func init() { register(wemaBank) }
