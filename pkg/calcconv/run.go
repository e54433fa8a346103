package calcconv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"calcconv/pkg/calcconv/models"
)

// Run converts every configured file in order, writing outputs next to
// the inputs in dir and human-readable progress lines to out. Missing,
// empty, and unreadable inputs are reported and skipped; Run visits
// every mapping entry and only returns an error if a progress line
// itself cannot be written.
func Run(dir string, mappings []Mapping, opts Options, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "Converting CSV -> JSON ...\n\n"); err != nil {
		return err
	}

	for _, m := range mappings {
		inPath := filepath.Join(dir, m.Input)
		if _, err := os.Stat(inPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "  MISSING: %s\n", m.Input)
			continue
		}

		doc, report, err := Convert(inPath, opts)
		if errors.Is(err, ErrNoDataRows) {
			fmt.Fprintf(out, "  SKIP %s (empty)\n", m.Input)
			continue
		}
		if err != nil {
			slog.Warn("conversion failed", "input", m.Input, "error", err)
			fmt.Fprintf(out, "  SKIP %s (%v)\n", m.Input, err)
			continue
		}

		outPath := filepath.Join(dir, m.Output)
		if err := writeDocument(outPath, doc); err != nil {
			slog.Warn("write failed", "output", m.Output, "error", err)
			fmt.Fprintf(out, "  SKIP %s (%v)\n", m.Input, err)
			continue
		}

		slog.Debug("converted",
			"input", m.Input,
			"output", m.Output,
			"rows", report.Rows,
			"kept_columns", report.KeptColumns,
			"total_columns", report.TotalColumns,
		)
		fmt.Fprintf(out, "  %s -> %s  (%d rows, %d/%d cols, dropped: %s)\n",
			m.Input, m.Output,
			report.Rows, report.KeptColumns, report.TotalColumns,
			droppedList(report.Dropped))
	}

	_, err := fmt.Fprintf(out, "\nDone.\n")
	return err
}

// writeDocument serializes the document compactly and overwrites the
// target file.
func writeDocument(path string, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return NewConvertError(filepath.Base(path), "serialize", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewConvertError(filepath.Base(path), "write", err)
	}
	return nil
}

// droppedList formats the sorted dropped-column names for the report
// line, with an explicit marker when nothing was dropped.
func droppedList(dropped []string) string {
	if len(dropped) == 0 {
		return "none"
	}
	return "[" + strings.Join(dropped, " ") + "]"
}
