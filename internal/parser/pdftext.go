package parser

import (
	"regexp"
	"strings"
)

// Helpers shared by the banks whose statements arrive as flat PDF text
// rather than a cell grid. The reconstruction shape is the same for all of
// them: strip boilerplate, seed a running balance from the opening-balance
// anchor, scan for repeating entry anchors, and inside each entry read the
// monetary tokens — last one is the post-transaction balance, the one
// before it the amount — then recover the missing credit/debit flag from
// the balance delta.

// moneyToken matches monetary-looking text: grouped thousands and exactly
// two decimals. Branch codes and phone numbers without decimals don't match.
var moneyToken = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}`)

// moneyMatch is one monetary token with its location in the entry text.
type moneyMatch struct {
	value      int64
	start, end int
}

// findMoneyTokens returns every monetary token in s, in order.
func findMoneyTokens(s string) []moneyMatch {
	var out []moneyMatch
	for _, loc := range moneyToken.FindAllStringIndex(s, -1) {
		v, ok := parseMoney(s[loc[0]:loc[1]])
		if !ok {
			continue
		}
		out = append(out, moneyMatch{value: v, start: loc[0], end: loc[1]})
	}
	return out
}

// splitEntryAmounts interprets one entry's monetary tokens: the last token
// is the post-transaction balance, the token immediately before it the
// amount. Entries with embedded branch/telephone numbers that happen to
// look like amounts still resolve correctly because only the last two
// tokens are read.
func splitEntryAmounts(entry string) (amount, balance moneyMatch, ok bool) {
	toks := findMoneyTokens(entry)
	if len(toks) < 2 {
		return moneyMatch{}, moneyMatch{}, false
	}
	return toks[len(toks)-2], toks[len(toks)-1], true
}

// balanceTracker threads the running balance through one reconstruction
// pass. It is an explicit accumulator local to that pass — seeded from the
// statement's opening-balance anchor, advanced per classified entry, and
// discarded with the pass.
type balanceTracker struct {
	balance int64
	seeded  bool
}

func (t *balanceTracker) seed(balance int64) {
	t.balance = balance
	t.seeded = true
}

// classify recovers the credit/debit flag from the balance delta: within a
// one-kobo tolerance, previous+amount == balance means credit and
// previous-amount == balance means debit. On success the running balance
// advances. When the tracker is unseeded or neither delta fits (a page
// gap, an entry the scanner skipped), it reseeds from the stated balance
// and reports failure so the caller can fall back to narration heuristics.
func (t *balanceTracker) classify(amount, balance int64) (int64, bool) {
	if t.seeded {
		creditDiff := abs64(t.balance + amount - balance)
		debitDiff := abs64(t.balance - amount - balance)
		if creditDiff <= 1 || debitDiff <= 1 {
			t.balance = balance
			if creditDiff <= debitDiff {
				return amount, true
			}
			return -amount, true
		}
	}
	t.balance = balance
	t.seeded = true
	return 0, false
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

var openingBalanceMarker = regexp.MustCompile(`(?i)(opening balance|balance b/?f(?:wd)?|brought forward)`)

// findOpeningBalance locates the opening-balance anchor and returns the
// last monetary token on its line.
func findOpeningBalance(text string) (int64, bool) {
	for _, line := range strings.Split(text, "\n") {
		if !openingBalanceMarker.MatchString(line) {
			continue
		}
		toks := findMoneyTokens(line)
		if len(toks) == 0 {
			continue
		}
		return toks[len(toks)-1].value, true
	}
	return 0, false
}

// stripBoilerplate removes headers, footers, pagination markers and legal
// boilerplate before anchor scanning. Patterns are per-bank; substitution
// is with a space so anchors split across a removal don't fuse.
func stripBoilerplate(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, " ")
	}
	return text
}

// debitCreditCells places a signed kobo amount into the debit/credit cell
// pair of a reconstructed pseudo-row.
func debitCreditCells(signed int64) (debit, credit string) {
	if signed >= 0 {
		return "", FormatKobo(signed)
	}
	return FormatKobo(-signed), ""
}

// fallbackSign applies the narration heuristic used when the balance delta
// cannot decide direction: outflow-sounding tokens make it a debit,
// anything else a credit.
var outflowTokens = []string{
	"charge", "fee", "levy", "pos", "atm", "withdrawal", "purchase",
	"bill", "airtime", "debit", "dr ", "to ", "sent",
}

func fallbackSign(narration string, amount int64) int64 {
	lower := strings.ToLower(narration)
	for _, tok := range outflowTokens {
		if strings.Contains(lower, tok) {
			return -amount
		}
	}
	return amount
}
