package models

import (
	"bytes"
	"encoding/json"
)

// Column is a named, ordered sequence of coerced values, one per
// input row. A value is nil (absent), int64, float64, or string.
type Column struct {
	Name   string
	Values []interface{}
}

// Document is the columnar output artifact: retained columns in
// input header order, each carrying one value per input row.
type Document struct {
	Columns []Column
}

// MarshalJSON serializes the document as a single flat JSON object.
// Key order follows Columns order; map-based marshaling would sort
// keys, so the object is assembled by hand.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range d.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(col.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		values, err := json.Marshal(col.Values)
		if err != nil {
			return nil, err
		}
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
