package calcconv

import (
	"path/filepath"
	"sort"
	"strings"

	"calcconv/pkg/calcconv/models"
	"calcconv/pkg/calcconv/parser"
)

// Convert reads a tabular input file, prunes redundant and all-zero
// columns, and builds the columnar document together with a report.
// It returns ErrNoDataRows when the file has no data rows (including
// a completely empty file).
func Convert(path string, opts Options) (*models.Document, *models.Report, error) {
	table, err := readTable(path, opts)
	if err != nil {
		return nil, nil, NewConvertError(filepath.Base(path), "parse", err)
	}
	if table.RowCount() == 0 {
		return nil, nil, ErrNoDataRows
	}

	var dropped []string
	doc := &models.Document{}
	for idx, name := range table.Headers {
		values := table.Column(idx)
		if ShouldDrop(name, values, opts) {
			dropped = append(dropped, name)
			continue
		}
		col := models.Column{
			Name:   name,
			Values: make([]interface{}, len(values)),
		}
		for i, raw := range values {
			col.Values[i] = parser.ParseValue(raw)
		}
		doc.Columns = append(doc.Columns, col)
	}
	sort.Strings(dropped)

	report := &models.Report{
		Rows:         table.RowCount(),
		TotalColumns: len(table.Headers),
		KeptColumns:  len(doc.Columns),
		Dropped:      dropped,
	}
	return doc, report, nil
}

// readTable dispatches on the file extension: workbook exports are
// read from the first sheet, everything else as delimited text.
func readTable(path string, opts Options) (*models.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parser.ReadXLSX(path)
	}
	return parser.ReadCSV(path, opts.Delimiter)
}
