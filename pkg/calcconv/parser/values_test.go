package parser

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"5", int64(5)},
		{"-100", int64(-100)},
		{" 7 ", int64(7)},
		{"1e2", int64(100)},
		{"5.0", 5.0},
		{"5.004", 5.0},
		{"3.14159", 3.14},
		{"2.678", 2.68},
		{"-1.5", -1.5},
		{"abc", "abc"},
		{"2024-01-01", "2024-01-01"},
		{"NaN", "NaN"},
		{"Inf", "Inf"},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestParseValueIntegerNeedsNoDecimalPoint(t *testing.T) {
	// A whole number written with a decimal point stays a float.
	if v := ParseValue("12.0"); v != 12.0 {
		t.Errorf("ParseValue(\"12.0\") = %v (type: %T), expected float64 12", v, v)
	}
	if v := ParseValue("12"); v != int64(12) {
		t.Errorf("ParseValue(\"12\") = %v (type: %T), expected int64 12", v, v)
	}
}
