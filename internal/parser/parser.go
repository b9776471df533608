package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/prettyirrelevant/wakaru/internal/extractor"
	"github.com/prettyirrelevant/wakaru/internal/models"
	"github.com/prettyirrelevant/wakaru/internal/reader"
)

// ProgressFunc receives coarse progress while a file is being parsed. It
// fires zero or more times before ParseFile returns.
type ProgressFunc func(percent int, message string)

// progressChunk is how many rows are processed between progress callbacks.
// Chunking exists purely for progress reporting — processing itself is
// synchronous and single-threaded.
const progressChunk = 200

// Parser is the statement parsing facade. It dispatches an incoming file's
// rows to the right bank configuration and aggregates the results.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// ErrUnknownBank is returned when neither the caller nor content detection
// could identify the bank.
var ErrUnknownBank = errors.New("could not determine bank; pass a bank code explicitly")

// ParseFile turns a raw statement export into canonical transactions.
// bank may be empty, in which case the bank is detected from content
// markers. password is only consulted for protected PDFs.
//
// A returned error means the file could not be processed at all; a nil
// error with zero transactions means a structurally valid but contentless
// statement. Individual bad rows are skipped, never fatal.
func (p *Parser) ParseFile(data []byte, filename string, bank models.BankCode, password string, onProgress ProgressFunc) ([]models.Transaction, error) {
	if onProgress == nil {
		onProgress = func(int, string) {}
	}
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}

	kind := reader.DetectKind(filename)
	p.logger.Debug("parsing statement", "filename", filename, "kind", kind, "bank", bank)

	switch kind {
	case reader.KindPDF:
		onProgress(5, "extracting text")
		text, err := extractor.ExtractText(data, password)
		if err != nil {
			return nil, fmt.Errorf("pdf text extraction failed: %w", err)
		}
		return p.ParseText(text, bank, onProgress)

	case reader.KindXLSX, reader.KindXLS, reader.KindDelimited:
		onProgress(5, "reading rows")
		rows, err := reader.ReadGrid(data, kind)
		if err != nil {
			return nil, fmt.Errorf("could not read %s file: %w", kind, err)
		}
		return p.ParseRows(rows, bank, onProgress)

	default:
		return nil, fmt.Errorf("unsupported file type for %q", filename)
	}
}

// ParseRows runs the row engine over a pre-tabulated cell grid.
func (p *Parser) ParseRows(rows []models.Row, bank models.BankCode, onProgress ProgressFunc) ([]models.Transaction, error) {
	if onProgress == nil {
		onProgress = func(int, string) {}
	}

	b, err := p.resolveBank(bank, func() string { return gridSample(rows) })
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	for i, row := range rows {
		if i%progressChunk == 0 && len(rows) > 0 {
			pct := 10 + i*85/len(rows)
			last := i + progressChunk
			if last > len(rows) {
				last = len(rows)
			}
			onProgress(pct, fmt.Sprintf("parsing rows %d-%d of %d", i+1, last, len(rows)))
		}
		if tx := p.parseRow(b, row, i); tx != nil {
			transactions = append(transactions, *tx)
		}
	}

	onProgress(100, fmt.Sprintf("parsed %d transactions", len(transactions)))
	p.logger.Info("statement parsed", "bank", b.Code, "rows", len(rows), "transactions", len(transactions))
	return transactions, nil
}

// ParseText reconstructs pseudo-rows from a flat PDF text blob and runs the
// row engine over them.
func (p *Parser) ParseText(text string, bank models.BankCode, onProgress ProgressFunc) ([]models.Transaction, error) {
	if onProgress == nil {
		onProgress = func(int, string) {}
	}

	b, err := p.resolveBank(bank, func() string { return text })
	if err != nil {
		return nil, err
	}
	if b.Reconstruct == nil {
		return nil, fmt.Errorf("%s statements are tabular exports, not PDF text", b.Name)
	}

	onProgress(20, "reconstructing statement entries")
	rows := b.Reconstruct(text)
	return p.ParseRows(rows, b.Code, onProgress)
}

func (p *Parser) resolveBank(code models.BankCode, sample func() string) (*Bank, error) {
	if code != "" {
		b, ok := Lookup(code)
		if !ok {
			return nil, fmt.Errorf("unsupported bank %q", code)
		}
		return b, nil
	}

	detected, ok := Detect(sample())
	if !ok {
		return nil, ErrUnknownBank
	}
	p.logger.Debug("auto-detected bank", "bank", detected)
	b, _ := Lookup(detected)
	return b, nil
}

// Detect identifies the bank from raw statement content markers.
func Detect(content string) (models.BankCode, bool) {
	lower := strings.ToLower(content)
	for _, code := range SupportedBanks() {
		for _, marker := range registry[code].Markers {
			if strings.Contains(lower, strings.ToLower(marker)) {
				return code, true
			}
		}
	}
	return "", false
}

// gridSample flattens the leading rows of a grid for bank detection.
func gridSample(rows []models.Row) string {
	var sb strings.Builder
	for i, row := range rows {
		if i >= 30 {
			break
		}
		for _, cell := range row {
			sb.WriteString(cell.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
