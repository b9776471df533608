package reader

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// readXLSX reads the first sheet of an OOXML workbook. Bank exports put
// the statement on the first sheet; extra sheets hold disclaimers and are
// ignored.
func readXLSX(data []byte) ([]models.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening xlsx workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}
	return rows, nil
}
