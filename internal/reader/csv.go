package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// sniffDelimiter picks the separator that splits the first non-empty line
// into the most fields. Nigerian bank CSV exports use commas, semicolons
// or tabs depending on the export tool.
func sniffDelimiter(data []byte) rune {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		best, count := ',', strings.Count(line, ",")
		if n := strings.Count(line, ";"); n > count {
			best, count = ';', n
		}
		if n := strings.Count(line, "\t"); n > count {
			best = '\t'
		}
		return best
	}
	return ','
}

func readDelimited(data []byte) ([]models.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading delimited file: %w", err)
	}

	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}
	return rows, nil
}
