// Package calcconv converts delimited tabular export files into
// compact columnar JSON documents.
package calcconv

// Options configures conversion behavior.
type Options struct {
	// Delimiter separates fields in CSV input.
	Delimiter rune
	// DropColumns lists column names that are always excluded,
	// regardless of content (redundant time-axis duplicates).
	DropColumns []string
	// KeepColumns lists column names that are always retained,
	// even when every value is zero.
	KeepColumns []string
}

// DefaultOptions returns the conversion options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ';',
		DropColumns: []string{"date", "month"},
		KeepColumns: []string{"timestamps"},
	}
}

// AlwaysDropped reports whether the named column is unconditionally excluded.
func (o Options) AlwaysDropped(name string) bool {
	return contains(o.DropColumns, name)
}

// AlwaysKept reports whether the named column is unconditionally retained.
func (o Options) AlwaysKept(name string) bool {
	return contains(o.KeepColumns, name)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
