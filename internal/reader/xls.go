package reader

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Legacy .xls statements rarely exceed a few thousand rows; the cap just
// bounds a corrupt file.
const xlsMaxRows = 50000

func readXLS(data []byte) ([]models.Row, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("opening xls workbook: %w", err)
	}

	records := workbook.ReadAllCells(xlsMaxRows)
	if len(records) == 0 {
		return nil, fmt.Errorf("xls workbook has no rows")
	}

	rows := make([]models.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}
	return rows, nil
}
