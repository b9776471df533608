// Package reader turns uploaded statement files into a uniform cell grid.
// Spreadsheets and delimited text all come out as []models.Row; PDF files
// are handled separately by the extractor since they yield text, not cells.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prettyirrelevant/wakaru/internal/models"
)

// Kind identifies the container format of an uploaded statement.
type Kind string

const (
	KindPDF       Kind = "pdf"
	KindXLSX      Kind = "xlsx"
	KindXLS       Kind = "xls"
	KindDelimited Kind = "delimited"
	KindUnknown   Kind = "unknown"
)

// DetectKind maps a filename to its container format. Detection is by
// extension; banks are consistent about these and sniffing file magic
// buys nothing for the formats we accept.
func DetectKind(filename string) Kind {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF
	case ".xlsx":
		return KindXLSX
	case ".xls":
		return KindXLS
	case ".csv", ".tsv", ".txt":
		return KindDelimited
	default:
		return KindUnknown
	}
}

// ReadGrid decodes a spreadsheet or delimited file into rows of cells.
// Cells that the source leaves blank come back as null cells so the
// parser can tell "empty column" from "zero".
func ReadGrid(data []byte, kind Kind) ([]models.Row, error) {
	switch kind {
	case KindXLSX:
		return readXLSX(data)
	case KindXLS:
		return readXLS(data)
	case KindDelimited:
		return readDelimited(data)
	default:
		return nil, fmt.Errorf("no grid reader for %q files", kind)
	}
}

func toRow(record []string) models.Row {
	row := make(models.Row, len(record))
	for i, v := range record {
		v = strings.TrimSpace(v)
		if v == "" {
			row[i] = models.NullCell
		} else {
			row[i] = models.NewCell(v)
		}
	}
	return row
}
