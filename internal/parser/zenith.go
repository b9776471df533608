package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Zenith PDF text keeps the statement's line breaks, and narrations wrap
// across them. A wrapped fragment can land on either side of its entry:
//
//	02/03/2023 NIP/CHUKWUDI EZE/UBA 12,500.00 87,300.00
//	Ref: 000013230302
//	Send to MARYAM BELLO
//	03/03/2023 5,000.00 82,300.00
//
// "Ref: ..." trails the entry above it, while "Send to ..." is the start
// of the NEXT entry's narration printed above its own date line. The
// reconstruction merges both directions before handing rows to the shared
// engine. No debit/credit columns here either, so direction comes from
// the running balance.
var zenithBank = &Bank{
	Code:       models.BankZenith,
	Name:       "Zenith Bank",
	MinColumns: 5,
	Columns: func() columnMap {
		c := noColumns()
		c.Date, c.Narration = 0, 1
		c.Debit, c.Credit, c.Balance = 2, 3, 4
		return c
	}(),
	DateLayouts: []string{"02/01/2006", "2/1/2006", "02-01-2006"},
	TypeRules:   chargeFirstTypeRules,
	Markers:     []string{"zenith bank", "zenithbank", "zmobile"},
	Reconstruct: reconstructZenith,
	Counterparty: []counterpartyRule{
		// "NIP/CHUKWUDI EZE/UBA" — slash-delimited NIP narration.
		{
			pattern: regexp.MustCompile(`(?i)NIP/([A-Za-z .,'-]+?)/([A-Z]{2,12})\b`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1], Bank: m[2]}
			},
		},
		// "Send to MARYAM BELLO" / "Received from ...".
		{
			pattern: regexp.MustCompile(`(?i)(?:send to|received from) ([A-Za-z .,'-]+?)(?:/|\d|$)`),
			extract: func(m []string) models.Counterparty {
				return models.Counterparty{Name: m[1]}
			},
		},
	},
}

var (
	zenithDateLine = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)

	// Fragments that open an entry's narration but print before the date
	// line; everything else without a date attaches to the entry above.
	zenithForward = regexp.MustCompile(`(?i)^(send to|received from|transfer (?:to|from)|pos purchase|web purchase|nip/)`)

	zenithBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?i)zenith bank plc.*?(\n|$)`),
		regexp.MustCompile(`(?i)account statement.*?(\n|$)`),
		regexp.MustCompile(`(?i)page \d+(?: of \d+)?`),
		regexp.MustCompile(`(?i)date\s+description\s+.*?balance`),
		regexp.MustCompile(`(?i)for enquiries.*?(\n|$)`),
	}
)

// mergeZenithLines collapses wrapped narration fragments into one line
// per entry. Forward fragments are held and prefixed onto the next date
// line; anything else is appended to the previous one.
func mergeZenithLines(text string) []string {
	var entries []string
	var pending []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if zenithDateLine.MatchString(line) {
			if len(pending) > 0 {
				date := line[:len(zenithDateLine.FindString(line))]
				rest := strings.TrimSpace(line[len(date):])
				line = date + " " + strings.Join(pending, " ")
				if rest != "" {
					line += " " + rest
				}
				pending = nil
			}
			entries = append(entries, line)
			continue
		}

		if zenithForward.MatchString(line) {
			pending = append(pending, line)
			continue
		}

		if len(entries) > 0 {
			entries[len(entries)-1] += " " + line
		}
	}
	return entries
}

func reconstructZenith(text string) []models.Row {
	text = stripBoilerplate(text, zenithBoilerplate)

	var tracker balanceTracker
	if opening, ok := findOpeningBalance(text); ok {
		tracker.seed(opening)
	}

	var rows []models.Row
	for _, entry := range mergeZenithLines(text) {
		date := zenithDateLine.FindString(entry)
		body := strings.TrimSpace(entry[len(date):])

		if openingBalanceMarker.MatchString(body) {
			if toks := findMoneyTokens(body); len(toks) > 0 {
				tracker.seed(toks[len(toks)-1].value)
			}
			continue
		}

		amountTok, balanceTok, ok := splitEntryAmounts(body)
		if !ok {
			continue
		}

		narration := strings.TrimSpace(body[:amountTok.start])
		if trailing := strings.TrimSpace(body[balanceTok.end:]); trailing != "" {
			narration = strings.TrimSpace(narration + " " + trailing)
		}

		signed, ok := tracker.classify(amountTok.value, balanceTok.value)
		if !ok {
			signed = fallbackSign(narration, amountTok.value)
		}

		debit, credit := debitCreditCells(signed)
		rows = append(rows, models.Row{
			models.NewCell(date),
			models.NewCell(narration),
			models.NewCell(debit),
			models.NewCell(credit),
			models.NewCell(FormatKobo(balanceTok.value)),
		})
	}
	return rows
}

func init() { register(zenithBank) }
