package report

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/nao1215/streamlens/internal/model"
)

// CSVWriter outputs result tables as RFC 4180 delimited text.
// This format is designed for spreadsheet import and shell pipelines.
type CSVWriter struct {
	baseWriter

	// comma is the field delimiter. Defaults to ','.
	comma rune
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithComma sets a custom field delimiter (e.g. '\t' for TSV output).
func WithComma(comma rune) CSVWriterOption {
	return func(w *CSVWriter) {
		w.comma = comma
	}
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{
		baseWriter: newBaseWriter(output),
		comma:      ',',
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the table as delimited text: one header row followed by
// the result rows. An empty table still emits its header so downstream
// tooling sees the column labels.
func (w *CSVWriter) Write(table *model.ResultTable) (int, error) {
	// Render into a buffer first so Write can report bytes written,
	// matching the Writer interface contract.
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = w.comma

	if err := cw.Write(table.Columns); err != nil {
		return 0, err
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
