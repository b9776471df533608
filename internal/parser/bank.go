package parser

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// columnMap gives the positional layout of one bank's rows. -1 means the
// bank has no such column. Signed is for banks that publish one signed
// amount column instead of a debit/credit pair.
type columnMap struct {
	Date         int
	ValueDate    int
	Narration    int
	Reference    int
	Debit        int
	Credit       int
	Signed       int
	Balance      int
	RawCategory  int
	Counterparty int
	SessionID    int
}

// noColumns is the starting point for every bank's column map so that an
// unmentioned column is absent rather than accidentally index zero.
func noColumns() columnMap {
	return columnMap{
		Date: -1, ValueDate: -1, Narration: -1, Reference: -1,
		Debit: -1, Credit: -1, Signed: -1, Balance: -1,
		RawCategory: -1, Counterparty: -1, SessionID: -1,
	}
}

// Bank is the declarative configuration that drives the shared row engine.
// Adding a bank means adding one of these — a column map, date layouts and
// an ordered counterparty cascade — not a new parser implementation. Banks
// whose statements arrive as flat PDF text additionally supply Reconstruct
// to rebuild pseudo-rows in their column layout.
type Bank struct {
	Code       models.BankCode
	Name       string
	MinColumns int
	Columns    columnMap

	// DateLayouts are tried in order by ParseDate. ValueDateLayouts
	// defaults to DateLayouts when nil.
	DateLayouts      []string
	ValueDateLayouts []string

	// TypeRules overrides the default keyword priority; nil keeps it.
	TypeRules []typeRule

	// Counterparty is the ordered extraction cascade over narrations.
	Counterparty []counterpartyRule

	// Markers identify this bank inside raw statement content for
	// auto-detection when the caller passes no bank code.
	Markers []string

	// Normalize optionally rewrites a raw row before column mapping, for
	// formats with quirks a column map alone cannot express.
	Normalize func(models.Row) models.Row

	// Reconstruct rebuilds pseudo-rows from a flat PDF text blob. Nil for
	// banks whose exports already arrive as cell grids.
	Reconstruct func(text string) []models.Row
}

var registry = map[models.BankCode]*Bank{}

func register(b *Bank) {
	registry[b.Code] = b
}

// Lookup returns the configuration for a bank code.
func Lookup(code models.BankCode) (*Bank, bool) {
	b, ok := registry[code]
	return b, ok
}

// SupportedBanks lists registered bank codes in stable order.
func SupportedBanks() []models.BankCode {
	codes := make([]models.BankCode, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

const descriptionFallback = "NO DESCRIPTION"

// parseRow converts one raw row into a canonical transaction, or nil for
// rows that are not transactions (headers, separators, opening-balance
// lines, rows missing a date or amount). A panic inside extraction is
// recovered and logged with the row index and bank so a single malformed
// row never aborts the statement.
func (p *Parser) parseRow(b *Bank, row models.Row, idx int) (tx *models.Transaction) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("row extraction panicked", "bank", b.Code, "row", idx, "panic", r)
			tx = nil
		}
	}()

	if b.Normalize != nil {
		row = b.Normalize(row)
	}
	if len(row) < b.MinColumns {
		return nil
	}
	cols := b.Columns

	date, ok := ParseDate(row.Cell(cols.Date).String(), b.DateLayouts...)
	if !ok {
		return nil
	}

	var amount int64
	if cols.Signed >= 0 {
		amount, ok = ParseAmount(row.Cell(cols.Signed).String())
	} else {
		amount, ok = ParseDebitCredit(row.Cell(cols.Debit).String(), row.Cell(cols.Credit).String())
	}
	if !ok {
		p.logger.Debug("row has no parseable amount", "bank", b.Code, "row", idx)
		return nil
	}

	narration := strings.TrimSpace(row.Cell(cols.Narration).String())
	reference := strings.TrimSpace(row.Cell(cols.Reference).String())

	meta := &models.Meta{Type: inferType(narration, b.TypeRules)}
	if cp, ok := extractCounterparty(narration, b.Counterparty); ok {
		meta.Counterparty = &cp
	} else if cols.Counterparty >= 0 {
		if name := tidyName(row.Cell(cols.Counterparty).String()); name != "" {
			meta.Counterparty = &models.Counterparty{Name: name}
		}
	}
	if meta.Type == models.TypeBill {
		meta.Bill = extractBill(narration)
	}
	if cols.Balance >= 0 {
		if bal, ok := parseMoney(row.Cell(cols.Balance).String()); ok {
			meta.BalanceAfter = &bal
		}
	}
	if cols.RawCategory >= 0 {
		meta.RawCategory = strings.TrimSpace(row.Cell(cols.RawCategory).String())
	}
	if cols.SessionID >= 0 {
		meta.SessionID = strings.TrimSpace(row.Cell(cols.SessionID).String())
	}
	if cols.ValueDate >= 0 {
		layouts := b.ValueDateLayouts
		if layouts == nil {
			layouts = b.DateLayouts
		}
		if vd, ok := ParseDate(row.Cell(cols.ValueDate).String(), layouts...); ok {
			meta.ValueDate = &vd
		}
	}

	return newTransaction(b, date, amount, narration, reference, meta)
}

// newTransaction is the single construction point for canonical records:
// it applies the description fallback, fixes Category from the amount's
// sign and derives the content-hash id. Every bank goes through here so
// the export contract cannot drift per bank.
func newTransaction(b *Bank, date time.Time, amount int64, description, reference string, meta *models.Meta) *models.Transaction {
	description = tidyName(description)
	if description == "" {
		description = descriptionFallback
	}
	if reference == "" {
		reference = GenerateReference(date, description, 12)
	}

	salts := []string{reference, description}
	if meta != nil && meta.Counterparty != nil {
		salts = append(salts, meta.Counterparty.Name)
	}

	return &models.Transaction{
		ID:          GenerateID(b.Code, date, amount, salts...),
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    models.CategoryOf(amount),
		BankSource:  b.Code,
		Reference:   reference,
		Meta:        meta,
	}
}

// billerPattern pulls "biller/customer-id" shapes out of bill narrations,
// e.g. "BILLS/IKEDC/45021998811" or "DSTV-7023441985".
var billerPattern = regexp.MustCompile(`(?i)(?:bills?[/ -])?([A-Za-z][A-Za-z0-9 ]{2,20}?)[/-](\d{6,13})\b`)

func extractBill(narration string) *models.Bill {
	if m := billerPattern.FindStringSubmatch(narration); m != nil {
		return &models.Bill{Biller: tidyName(m[1]), CustomerID: m[2]}
	}
	return nil
}
