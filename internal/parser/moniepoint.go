package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Moniepoint XLSX exports:
//
//	Date | Reference | Narration | Debit | Credit | Balance
//
// Timestamps are slash-ordered year first ("2023/03/14 09:21:44").
// Narrations follow "NIP Inward/Outward" phrasing with the counterparty
// and their bank in trailing segments.
var moniepointBank = &Bank{
	Code:       models.BankMoniepoint,
	Name:       "Moniepoint",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Reference, c.Narration = 0, 1, 2
		c.Debit, c.Credit, c.Balance = 3, 4, 5
		return c
	}(),
	DateLayouts: []string{
		"2006/01/02 15:04:05",
		"2006-01-02 15:04:05",
		"02/01/2006",
	},
	TypeRules: chargeFirstTypeRules,
	Markers:   []string{"moniepoint", "teamapt"},
	Counterparty: []counterpartyRule{
		// "NIP Inward from IFEANYI OKORO | ZENITH | 2210987654".
		{
			pattern: regexp.MustCompile(`(?i)NIP (?:Inward|Outward) (?:from|to) ([A-Za-z .,'-]+?) \| ([A-Z ]+?) \| (\d{10})`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[2], AccountNumber: m[3]}
			},
		},
		// "Transfer from BUKOLA ADEWALE".
		{
			pattern: regexp.MustCompile(`(?i)transfer (?:from|to) ([A-Za-z .,'-]+?)(?: \||/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
	},
}

func init() { register(moniepointBank) }
