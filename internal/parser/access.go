package parser

import (
	"regexp"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Access Bank XLSX exports carry one transaction per row:
//
//	Trans Date | Value Date | Reference | Narration | Debit | Credit | Balance
//
// Date format: DD-Mon-YYYY, occasionally DD/MM/YYYY on older exports.
// Narrations are slash-delimited NIP/USSD strings with the counterparty
// bank and name embedded.
var accessBank = &Bank{
	Code:       models.BankAccess,
	Name:       "Access Bank",
	MinColumns: 7,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.ValueDate, c.Reference, c.Narration = 0, 1, 2, 3
		c.Debit, c.Credit, c.Balance = 4, 5, 6
		return c
	}(),
	DateLayouts: []string{"02-Jan-2006", "02/01/2006", "2/1/2006"},
	// Fee rows read "NIP Charge" / "TRANSFER LEVY", so charges must be
	// tried before generic transfer tokens.
	TypeRules: chargeFirstTypeRules,
	Markers:   []string{"access bank", "accessbankplc"},
	Counterparty: []counterpartyRule{
		// "NIP/GTB/ADEYEMI OLUWASEUN/rent" — interbank NIP with bank code.
		{
			pattern: regexp.MustCompile(`(?i)^NIP/([A-Z]{2,12})/([A-Za-z .,'-]+?)(?:/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Bank: m[1], Name: m[2]}
			},
		},
		// "MOB/TRF/0723441985/CHIDINMA OKAFOR" — intrabank mobile transfer.
		{
			pattern: regexp.MustCompile(`(?i)^MOB/[A-Z]+/(\d{10})/([A-Za-z .,'-]+)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{AccountNumber: m[1], Name: m[2]}
			},
		},
		// "TRF FRM MUSA IBRAHIM TO ..." — the far party comes first.
		{
			pattern: regexp.MustCompile(`(?i)TRF FRM ([A-Za-z .,'-]+?)(?: TO |/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "USSD/AIRTIME/2348031234567" — phone top-ups name no party.
		{
			pattern: regexp.MustCompile(`(?i)^USSD/\w+/(234\d{10})`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{AccountNumber: m[1]}
			},
		},
	},
}

func init() { register(accessBank) }
