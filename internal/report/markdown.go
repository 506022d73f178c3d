package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/streamlens/internal/model"
)

// MarkdownWriter outputs result tables in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. Mermaid chart embedding for count distributions
type MarkdownWriter struct {
	baseWriter

	// chart enables a mermaid pie chart for small label/count tables.
	chart bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithChart enables pie-chart rendering for two-column count tables.
func WithChart(enabled bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.chart = enabled
	}
}

// maxChartRows limits pie charts to tables small enough to stay readable.
const maxChartRows = 8

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		chart:      true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table in Markdown format.
func (w *MarkdownWriter) Write(table *model.ResultTable) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H2(table.Name)
	md.PlainText("")

	if table.Empty() {
		md.Note("No matching records.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	md.Table(markdown.TableSet{
		Header: table.Columns,
		Rows:   table.Rows,
	})
	md.PlainText("")

	if w.chart && isChartable(table) {
		w.writePieChart(md, table)
	}

	return len(md.String()), md.Build()
}

// isChartable reports whether the table is a small label/count table.
func isChartable(table *model.ResultTable) bool {
	if len(table.Columns) != 2 || table.Columns[1] != "count" {
		return false
	}
	return table.Len() > 0 && table.Len() <= maxChartRows
}

// writePieChart writes a mermaid pie chart of the count distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, table *model.ResultTable) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(table.Name),
		piechart.WithShowData(true),
	)

	for _, row := range table.Rows {
		count, err := strconv.ParseUint(row[1], 10, 64)
		if err != nil || count == 0 {
			continue
		}
		chart.LabelAndIntValue(row[0], count)
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
