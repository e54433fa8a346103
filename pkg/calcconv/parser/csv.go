package parser

import (
	"encoding/csv"
	"fmt"
	"os"

	"calcconv/pkg/calcconv/models"
)

// ReadCSV parses a semicolon-delimited file into a Table.
// The first record is the header; data rows are normalized to the
// header width (short rows pad with empty cells, long rows truncate).
func ReadCSV(path string, delimiter rune) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // exports are occasionally ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
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

// normalizeRow fits a record to the header width.
func normalizeRow(record []string, width int) []string {
	row := make([]string, width)
	copy(row, record)
	return row
}
