package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nao1215/streamlens/internal/model"
)

// TextWriter outputs human-readable result tables.
// This format is designed for terminal display: a banner with the report
// name, aligned columns, and a row-count footer.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type TextWriter struct {
	baseWriter

	// showEmpty controls whether a table with no rows still prints its
	// header and banner. When false, empty tables print a single notice.
	showEmpty bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowEmpty configures the writer to print full headers for empty tables.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table in human-readable format.
func (w *TextWriter) Write(table *model.ResultTable) (int, error) {
	var sb strings.Builder

	w.writeBanner(&sb, table)

	if table.Empty() && !w.showEmpty {
		sb.WriteString("  (no matching records)\n\n")
		return w.output.Write([]byte(sb.String()))
	}

	w.writeTable(&sb, table)
	w.writeFooter(&sb, table)

	return w.output.Write([]byte(sb.String()))
}

// writeBanner writes the report name banner.
func (w *TextWriter) writeBanner(sb *strings.Builder, table *model.ResultTable) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(table.Name))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
}

// writeTable writes the aligned header and rows.
func (w *TextWriter) writeTable(sb *strings.Builder, table *model.ResultTable) {
	tw := tabwriter.NewWriter(sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	// Flush into the builder; tabwriter only fails when the underlying
	// writer fails, and strings.Builder never does.
	_ = tw.Flush() //nolint:errcheck
}

// writeFooter writes the row-count footer.
func (w *TextWriter) writeFooter(sb *strings.Builder, table *model.ResultTable) {
	noun := "rows"
	if table.Len() == 1 {
		noun = "row"
	}
	sb.WriteString(fmt.Sprintf("(%d %s)\n\n", table.Len(), noun))
}
