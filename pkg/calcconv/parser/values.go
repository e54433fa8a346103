// Package parser reads tabular input files and coerces cell values.
package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue coerces a raw cell to its output value.
// It returns nil for empty (whitespace-only) cells, int64 for whole
// numbers written without a decimal point, float64 rounded to two
// decimals for other numerics, and the trimmed string otherwise.
func ParseValue(raw string) interface{} {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if f == math.Trunc(f) && !strings.Contains(s, ".") && inInt64Range(f) {
		return int64(f)
	}
	return math.Round(f*100) / 100
}

func inInt64Range(f float64) bool {
	return f >= math.MinInt64 && f < math.MaxInt64
}
