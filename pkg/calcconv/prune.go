package calcconv

import (
	"strconv"
	"strings"
)

// ShouldDrop decides whether a column is excluded from output, given
// its name and raw values. Columns in Options.DropColumns are always
// excluded and columns in Options.KeepColumns always retained; any
// other column is excluded when every non-empty value parses as
// numeric zero. A non-numeric or nonzero value retains the column.
func ShouldDrop(name string, values []string, opts Options) bool {
	if opts.AlwaysDropped(name) {
		return true
	}
	if opts.AlwaysKept(name) {
		return false
	}
	for _, raw := range values {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != 0 {
			return false
		}
	}
	return true
}
