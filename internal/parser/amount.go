package parser

import (
	"math"
	"strconv"
	"strings"
)

// Amounts are held as int64 kobo throughout; the float round-trip below is
// confined to parsing and rounded immediately so no arithmetic ever happens
// in floating point.

// amountCleaner strips the decorations banks print around figures: the
// naira glyph, currency code, thousands separators and stray whitespace
// (including the non-breaking spaces PDF extraction produces).
var amountCleaner = strings.NewReplacer(
	"₦", "",
	"NGN", "",
	",", "",
	" ", "",
	" ", "",
)

// ParseAmount converts a locale-formatted monetary string to kobo. The
// second return is false when the cell holds no usable value: empty text,
// the "-"/"--" placeholders banks print for blank columns, unparseable
// text, and zero — a zero-amount row is never a real transaction.
func ParseAmount(s string) (int64, bool) {
	kobo, ok := parseMoney(s)
	if !ok || kobo == 0 {
		return 0, false
	}
	return kobo, true
}

// parseMoney is ParseAmount without the zero rejection, for balance fields
// where zero is a legitimate value.
func parseMoney(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "-", "--":
		return 0, false
	}

	s = amountCleaner.Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	// Round to the nearest kobo to absorb floating-point noise in the
	// source text (e.g. "1500.0000001" from spreadsheet cell formatting).
	return int64(math.Round(f * 100)), true
}

// ParseDebitCredit resolves a debit/credit column pair into a single signed
// kobo amount: credits come back positive, debits negative. Credit takes
// precedence if a row (erroneously) populates both columns. Returns false
// when neither column carries a value.
func ParseDebitCredit(debit, credit string) (int64, bool) {
	if v, ok := ParseAmount(credit); ok && v > 0 {
		return v, true
	}
	if v, ok := ParseAmount(debit); ok && v > 0 {
		return -v, true
	}
	return 0, false
}

// FormatKobo renders a kobo amount as a plain decimal string ("50000.00").
// Used by exports; never fed back into parsing.
func FormatKobo(kobo int64) string {
	sign := ""
	if kobo < 0 {
		sign = "-"
		kobo = -kobo
	}
	return sign + strconv.FormatInt(kobo/100, 10) + "." + pad2(kobo%100)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
