package calcconv

import (
	"errors"
	"fmt"
)

// ErrNoDataRows indicates the input has a header but no data rows.
var ErrNoDataRows = errors.New("no data rows")

// ConvertError represents an error during a single file conversion.
type ConvertError struct {
	File  string
	Stage string // "parse", "serialize", "write"
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %q (%s): %v", e.File, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// NewConvertError creates a new ConvertError.
func NewConvertError(file, stage string, err error) *ConvertError {
	return &ConvertError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}
