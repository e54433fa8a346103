package models

import (
	"encoding/json"
	"testing"
)

func TestDocumentMarshalJSON(t *testing.T) {
	doc := &Document{
		Columns: []Column{
			{Name: "timestamps", Values: []interface{}{int64(1), int64(2)}},
			{Name: "load", Values: []interface{}{1.25, nil}},
			{Name: "note", Values: []interface{}{"ok", "n/a"}},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Compact encoding, keys in column order, null for absent cells.
	want := `{"timestamps":[1,2],"load":[1.25,null],"note":["ok","n/a"]}`
	if string(data) != want {
		t.Errorf("JSON = %s, expected %s", data, want)
	}
}

func TestDocumentMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(&Document{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("JSON = %s, expected {}", data)
	}
}

func TestDocumentMarshalJSONEscapesNames(t *testing.T) {
	doc := &Document{
		Columns: []Column{
			{Name: `grid "feed"`, Values: []interface{}{int64(0)}},
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"grid \"feed\"":[0]}`
	if string(data) != want {
		t.Errorf("JSON = %s, expected %s", data, want)
	}
}
