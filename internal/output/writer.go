package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/pepscan/pepscan/internal/model"
)

// Writer renders one accumulated table to its destination.
type Writer interface {
	// Write outputs the table. Implementations must not mutate it.
	Write(table *model.Table) error
}

// PlainWriter prints the header and every row as tab-separated text.
// This is the default sink when no --output mode is selected.
type PlainWriter struct {
	out io.Writer
}

// NewPlainWriter creates a PlainWriter that outputs to the given stream.
func NewPlainWriter(out io.Writer) *PlainWriter {
	return &PlainWriter{out: out}
}

// Write outputs the table as tab-separated lines, header first.
func (w *PlainWriter) Write(table *model.Table) error {
	if _, err := fmt.Fprintln(w.out, strings.Join(table.Header, "\t")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range table.Rows {
		if _, err := fmt.Fprintln(w.out, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
