package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// UBA XLSX exports:
//
//	Trans Date | Value Date | Narration | Debit | Credit | Balance
//
// Dates are shouted (DD-MON-YYYY); ParseDate normalizes the month case.
// Narrations lead with the channel token and hold the counterparty after
// a "FROM"/"TO" marker or pipe-delimited NIP segments.
var ubaBank = &Bank{
	Code:       models.BankUBA,
	Name:       "United Bank for Africa",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.ValueDate, c.Narration = 0, 1, 2
		c.Debit, c.Credit, c.Balance = 3, 4, 5
		return c
	}(),
	DateLayouts: []string{"02-Jan-2006", "02-Jan-06", "02/01/2006"},
	TypeRules:   chargeFirstTypeRules,
	Markers:     []string{"united bank for africa", "ubagroup", "leo from uba"},
	Counterparty: []counterpartyRule{
		// "NIP|CHUKWU EMEKA|033|FCMB|rent march" — pipe-delimited NIP.
		{
			pattern: regexp.MustCompile(`(?i)^NIP\|([A-Za-z .,'-]+?)\|(\d{3})\|([A-Z]{2,12})`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[3]}
			},
		},
		// "TRANSFER FROM NGOZI EZE" / "TRANSFER TO BELLO SANI".
		{
			pattern: regexp.MustCompile(`(?i)TRANSFER (?:FROM|TO) ([A-Za-z .,'-]+?)(?:\||/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "POS PRCH ... SHOPRITE LEKKI LANG" — merchant POS entries.
		{
			pattern: regexp.MustCompile(`(?i)POS (?:PRCH|PUR|WD)[/ ](?:\d+[/ ])?([A-Za-z0-9 .'-]+)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
	},
}

func init() { register(ubaBank) }
