package parser

import (
	"regexp"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// typeRule maps narration keywords to a semantic transaction type. Rules
// are checked in declaration order and the first keyword hit wins, so the
// order IS the classification: narrations routinely carry overlapping
// tokens ("NIP Charge" contains both a transfer token and a charge token)
// and reordering silently changes results.
type typeRule struct {
	t        models.Type
	keywords []string
}

// defaultTypeRules is the shared priority order. Reversals and interest
// outrank everything; transfers come before airtime and charges; bills are
// checked last before the "other" fallback.
var defaultTypeRules = []typeRule{
	{models.TypeReversal, []string{"reversal", "rvsl", "rev.", "refund"}},
	{models.TypeInterest, []string{"interest"}},
	{models.TypeTransfer, []string{"transfer", "trf", "tnf", "nip", "neft", "rtgs", "send money", "ft-"}},
	{models.TypeAirtime, []string{"airtime", "recharge", "top-up", "topup", "vtu", "mtn", "glo ", "airtel", "9mobile"}},
	{models.TypeBankCharge, []string{"charge", "commission", "comm.", "fee", "levy", "stamp duty", "sms alert", "vat"}},
	{models.TypeCard, []string{"pos", "card payment", "web pay", "paystack", "flutterwave", "interswitch"}},
	{models.TypeATM, []string{"atm", "withdrawal", "cash out", "cashout", "cash w/d"}},
	{models.TypeBill, []string{"bill", "electric", "dstv", "gotv", "startimes", "phcn", "ikedc", "ekedc", "data bundle", "betting", "bet9ja", "sportybet"}},
}

// chargeFirstTypeRules is the variant several banks need: their narrations
// put "NIP Charge", "Transfer Levy" and the like on fee rows, so charges
// (and reversals, already first) must be tried before generic transfer
// detection.
var chargeFirstTypeRules = []typeRule{
	defaultTypeRules[0],
	defaultTypeRules[1],
	defaultTypeRules[4],
	defaultTypeRules[2],
	defaultTypeRules[3],
	defaultTypeRules[5],
	defaultTypeRules[6],
	defaultTypeRules[7],
}

// inferType classifies a narration against an ordered keyword rule list.
// A nil list means the shared default order.
func inferType(narration string, rules []typeRule) models.Type {
	if rules == nil {
		rules = defaultTypeRules
	}
	lower := strings.ToLower(narration)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.t
			}
		}
	}
	return models.TypeOther
}

// counterpartyRule is one entry in a bank's ordered extraction cascade: a
// pattern over the narration plus a mapping from its submatches to
// counterparty fields. Narration formats are bank-specific and ad hoc, so
// each variant gets its own rule rather than one unified parser.
type counterpartyRule struct {
	pattern *regexp.Regexp
	extract func(m []string) models.Counterparty
}

// extractCounterparty runs a cascade in declaration order. The first
// matching rule wins; no match is an empty result, not an error.
func extractCounterparty(narration string, rules []counterpartyRule) (models.Counterparty, bool) {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatch(narration); m != nil {
			cp := r.extract(m)
			cp.Name = tidyName(cp.Name)
			cp.Bank = tidyName(cp.Bank)
			cp.AccountNumber = strings.TrimSpace(cp.AccountNumber)
			if cp.Name == "" && cp.AccountNumber == "" && cp.Bank == "" {
				continue
			}
			return cp, true
		}
	}
	return models.Counterparty{}, false
}

func tidyName(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
