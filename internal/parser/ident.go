package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// GenerateID derives the deduplication key for a transaction: an
// ISO-normalized timestamp, the signed kobo amount and the caller's salt
// parts (reference, description, counterparty) joined into one string and
// run through a 32-bit rolling hash, base-36 encoded, prefixed with the
// bank's short code.
//
// This is a content hash, not a cryptographic one. Parsing the same row
// twice always yields the same id; two genuinely distinct transactions
// sharing identical date, amount and salt text collide, and that risk is
// accepted rather than papered over with extra entropy.
func GenerateID(bank models.BankCode, date time.Time, amount int64, salts ...string) string {
	var b strings.Builder
	b.WriteString(date.UTC().Format(time.RFC3339))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(amount, 10))
	for _, s := range salts {
		b.WriteByte('|')
		b.WriteString(strings.ToLower(strings.TrimSpace(s)))
	}

	// djb2
	var h uint32 = 5381
	for _, c := range []byte(b.String()) {
		h = h*33 + uint32(c)
	}
	return string(bank) + "_" + strconv.FormatUint(uint64(h), 36)
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// GenerateReference builds a readable fallback reference from the date and
// a truncated alphanumeric slice of the description, for rows where the
// bank supplies no reference of its own. Not globally unique — stable and
// filterable is the bar.
func GenerateReference(date time.Time, description string, maxLen int) string {
	slug := nonAlphanumeric.ReplaceAllString(description, "")
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	if slug == "" {
		slug = "TXN"
	}
	return date.Format("20060102") + "-" + strings.ToUpper(slug)
}
