package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"calcconv/pkg/calcconv/models"
)

// ReadXLSX parses the first sheet of a workbook into a Table.
// The first row is the header; excelize returns trailing-trimmed rows,
// so data rows are normalized to the header width like CSV rows.
func ReadXLSX(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &models.Table{}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s sheet %q: %w", path, sheets[0], err)
	}
	if len(records) == 0 {
		return &models.Table{}, nil
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, normalizeRow(record, len(headers)))
	}

	return &models.Table{Headers: headers, Rows: rows}, nil
}
