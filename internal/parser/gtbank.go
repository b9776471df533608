package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// GTBank statements arrive as flat PDF text with no tabular structure and,
// critically, no credit/debit column: each entry prints its amount and the
// balance after it side by side, so direction has to be recovered from the
// running-balance delta.
//
// One entry looks like (after extraction flattens the table):
//
//	01-Mar-2023 01-Mar-2023 TRANSFER FROM ADEBAYO OLA/NIP 50,000.00 150,000.00 IKEJA REF:S2033411
//
// The paired transaction/value dates are the entry anchor; everything up
// to the next pair belongs to this entry. The last monetary token is the
// post-transaction balance, the one before it the amount. Text after the
// balance is the originating branch and remarks.
var gtbankBank = &Bank{
	Code:       models.BankGTBank,
	Name:       "Guaranty Trust Bank",
	MinColumns: 6,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.ValueDate, c.Narration = 0, 1, 2
		c.Debit, c.Credit, c.Balance = 3, 4, 5
		c.Reference = 6
		return c
	}(),
	DateLayouts: []string{"02-Jan-2006", "2-Jan-2006"},
	TypeRules:   chargeFirstTypeRules,
	Markers:     []string{"guaranty trust", "gtbank", "gtworld"},
	Reconstruct: reconstructGTBank,
	Counterparty: []counterpartyRule{
		// "TRANSFER FROM ADEBAYO OLA/NIP" and the outbound variant.
		{
			pattern: regexp.MustCompile(`(?i)TRANSFER (?:FROM|TO) ([A-Za-z .,'-]+?)(?:/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
		// "NIP CR/ZENITH/CHIAMAKA OKEKE" — inbound NIP with source bank.
		{
			pattern: regexp.MustCompile(`(?i)NIP (?:CR|DR)/([A-Z]{2,12})/([A-Za-z .,'-]+?)(?:/|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Bank: m[1], Name: m[2]}
			},
		},
	},
}

var (
	gtbankDatePair = regexp.MustCompile(
		`(?i)\b(\d{1,2}-(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)-\d{4})\s+` +
			`(\d{1,2}-(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)-\d{4})\b`)

	gtbankReference = regexp.MustCompile(`(?i)\bREF[.: ]\s*([A-Z0-9/-]{4,})`)

	gtbankBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)guaranty trust bank plc.*?RC \d+`),
		regexp.MustCompile(`(?i)statement of account`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
		regexp.MustCompile(`(?i)trans date\s+value date\s+remarks.*?balance`),
		regexp.MustCompile(`(?i)please address all enquiries.*?(\n|$)`),
		regexp.MustCompile(`(?i)gtconnect.*?(\n|$)`),
	}
)

// reconstructGTBank rebuilds pseudo-rows from a GTBank PDF text blob. The
// running balance is seeded from the opening-balance line and threaded
// through the scan; it lives and dies with this pass.
func reconstructGTBank(text string) []models.Row {
	text = stripBoilerplate(text, gtbankBoilerplate)

	var tracker balanceTracker
	if opening, ok := findOpeningBalance(text); ok {
		tracker.seed(opening)
	}

	// Entry boundaries are the date-pair anchors.
	flat := strings.Join(strings.Fields(text), " ")
	anchors := gtbankDatePair.FindAllStringSubmatchIndex(flat, -1)

	var rows []models.Row
	for i, anchor := range anchors {
		entryEnd := len(flat)
		if i+1 < len(anchors) {
			entryEnd = anchors[i+1][0]
		}

		transDate := flat[anchor[2]:anchor[3]]
		valueDate := flat[anchor[4]:anchor[5]]
		entry := flat[anchor[5]:entryEnd]

		row, ok := gtbankEntryRow(transDate, valueDate, entry, &tracker)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// gtbankEntryRow turns one delimited entry into a pseudo-row, or reports
// false for entries without the amount/balance token pair (section
// headers, the opening-balance line itself).
func gtbankEntryRow(transDate, valueDate, entry string, tracker *balanceTracker) (models.Row, bool) {
	if openingBalanceMarker.MatchString(entry) {
		if toks := findMoneyTokens(entry); len(toks) > 0 {
			tracker.seed(toks[len(toks)-1].value)
		}
		return nil, false
	}

	amountTok, balanceTok, ok := splitEntryAmounts(entry)
	if !ok {
		return nil, false
	}

	narration := strings.TrimSpace(entry[:amountTok.start])
	trailing := strings.TrimSpace(entry[balanceTok.end:])

	signed, ok := tracker.classify(amountTok.value, balanceTok.value)
	if !ok {
		signed = fallbackSign(narration, amountTok.value)
	}

	reference := ""
	if m := gtbankReference.FindStringSubmatch(trailing); m != nil {
		reference = m[1]
		trailing = strings.TrimSpace(gtbankReference.ReplaceAllString(trailing, ""))
	}
	// What's left of the trailing text is the originating branch; keep it
	// on the narration rather than losing it.
	if trailing != "" {
		narration = narration + " @ " + trailing
	}

	debit, credit := debitCreditCells(signed)
	return models.Row{
		models.NewCell(transDate),
		models.NewCell(valueDate),
		models.NewCell(narration),
		models.NewCell(debit),
		models.NewCell(credit),
		models.NewCell(FormatKobo(balanceTok.value)),
		models.NewCell(reference),
	}, true
}

func init() { register(gtbankBank) }
