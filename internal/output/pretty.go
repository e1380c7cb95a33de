package output

import (
	"io"

	"github.com/nao1215/markdown"

	"github.com/pepscan/pepscan/internal/model"
)

// PrettyWriter renders a bordered table for terminal display.
//
// Design decision: We use the nao1215/markdown library because its table
// renderer pads cells to aligned columns, which reads well both in a
// terminal and when the output is pasted into documentation.
type PrettyWriter struct {
	out io.Writer
}

// NewPrettyWriter creates a PrettyWriter that outputs to the given stream.
func NewPrettyWriter(out io.Writer) *PrettyWriter {
	return &PrettyWriter{out: out}
}

// Write renders the table with an aligned header and one line per row.
func (w *PrettyWriter) Write(table *model.Table) error {
	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, []string(row))
	}

	return markdown.NewMarkdown(w.out).
		Table(markdown.TableSet{
			Header: []string(table.Header),
			Rows:   rows,
		}).
		Build()
}
