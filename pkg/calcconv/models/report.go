package models

// Report summarizes a single file conversion for console output.
type Report struct {
	// Rows is the number of data rows written.
	Rows int
	// TotalColumns is the column count of the input header.
	TotalColumns int
	// KeptColumns is the number of columns present in the output.
	KeptColumns int
	// Dropped lists the excluded column names, sorted.
	Dropped []string
}
