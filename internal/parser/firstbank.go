package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// FirstBank statements are flat PDF text anchored by a single date
// followed by the bank's reference token:
//
//	03-Mar-2023 FTN023080112233 NIP TRF FRM EMEKA OBI 094 25,000.00 75,000.00
//
// Like GTBank there is no credit/debit column. FirstBank entries also
// embed branch and telephone codes that can look like amounts, so only the
// last two monetary tokens are trusted: balance last, amount before it.
var firstbankBank = &Bank{
	Code:       models.BankFirstBank,
	Name:       "First Bank of Nigeria",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Reference, c.Narration = 0, 1, 2
		c.Debit, c.Credit, c.Balance = 3, 4, 5
		return c
	}(),
	DateLayouts: []string{"02-Jan-2006", "2-Jan-2006", "02-Jan-06"},
	Markers:     []string{"first bank of nigeria", "firstbank", "firstmobile"},
	Reconstruct: reconstructFirstBank,
	Counterparty: []counterpartyRule{
		// "NIP TRF FRM EMEKA OBI" / "NIP TRF TO ...".
		{
			pattern: regexp.MustCompile(`(?i)TRF (?:FRM|TO) ([A-Za-z .,'-]+?)(?: \d|/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "FIP:0098765432:FOLAKE ADEYINKA" — instant payment legs.
		{
			pattern: regexp.MustCompile(`(?i)FIP:(\d{10}):([A-Za-z .,'-]+)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{AccountNumber: m[1], Name: m[2]}
			},
		},
	},
}

var (
	// A date immediately followed by an uppercase reference token is the
	// entry anchor; a bare date inside a narration is not.
	firstbankAnchor = regexp.MustCompile(
		`(?i)\b(\d{1,2}-(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)-\d{2,4})\s+([A-Z0-9]{8,20})\b`)

	firstbankBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)first bank of nigeria (?:limited|plc).*?(\n|$)`),
		regexp.MustCompile(`(?i)statement (?:of account|period).*?(\n|$)`),
		regexp.MustCompile(`(?i)page \d+(?: of \d+)?`),
		regexp.MustCompile(`(?i)trans\.? date\s+reference\s+.*?balance`),
		regexp.MustCompile(`(?i)dispute resolution.*?(\n|$)`),
	}
)

func reconstructFirstBank(text string) []models.Row {
	text = stripBoilerplate(text, firstbankBoilerplate)

	var tracker balanceTracker
	if opening, ok := findOpeningBalance(text); ok {
		tracker.seed(opening)
	}

	flat := strings.Join(strings.Fields(text), " ")
	anchors := firstbankAnchor.FindAllStringSubmatchIndex(flat, -1)

	var rows []models.Row
	for i, anchor := range anchors {
		entryEnd := len(flat)
		if i+1 < len(anchors) {
			entryEnd = anchors[i+1][0]
		}

		date := flat[anchor[2]:anchor[3]]
		reference := flat[anchor[4]:anchor[5]]
		entry := flat[anchor[5]:entryEnd]

		if openingBalanceMarker.MatchString(entry) {
			if toks := findMoneyTokens(entry); len(toks) > 0 {
				tracker.seed(toks[len(toks)-1].value)
			}
			continue
		}

		amountTok, balanceTok, ok := splitEntryAmounts(entry)
		if !ok {
			continue
		}

		narration := strings.TrimSpace(entry[:amountTok.start])
		signed, ok := tracker.classify(amountTok.value, balanceTok.value)
		if !ok {
			signed = fallbackSign(narration, amountTok.value)
		}

		debit, credit := debitCreditCells(signed)
		rows = append(rows, models.Row{
			models.NewCell(date),
			models.NewCell(reference),
			models.NewCell(narration),
			models.NewCell(debit),
			models.NewCell(credit),
			models.NewCell(FormatKobo(balanceTok.value)),
		})
	}
	return rows
}

func init() { register(firstbankBank) }
