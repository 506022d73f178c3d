package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/streamlens/internal/model"
)

// requiredColumns are the headers that must be present for a load to start.
// The remaining catalog columns are optional per record and default to empty.
var requiredColumns = []string{"show_id", "type", "title", "release_year"}

// RowError describes one skipped row.
type RowError struct {
	// Line is the 1-based line number in the source file (header is line 1).
	Line int

	// Reason is a short human-readable explanation.
	Reason string
}

// Result holds the outcome of a load: the records that parsed cleanly and
// the rows that were skipped.
type Result struct {
	// Records are the successfully parsed catalog entries, in file order.
	Records []model.ContentRecord

	// Skipped lists malformed rows that were dropped during the load.
	Skipped []RowError
}

// CSVLoader reads a catalog CSV file into ContentRecord values.
type CSVLoader struct {
	logger *slog.Logger
}

// Option configures a CSVLoader.
type Option func(*CSVLoader)

// WithLogger sets a custom logger for the loader.
// Skipped rows are logged at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(l *CSVLoader) {
		l.logger = logger
	}
}

// NewCSVLoader creates a CSVLoader with the given options.
func NewCSVLoader(opts ...Option) *CSVLoader {
	l := &CSVLoader{}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// Load reads the catalog file at path.
// It returns ErrSourceUnavailable (wrapped) when the file cannot be opened.
func (l *CSVLoader) Load(path string) (*Result, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	result, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Read decodes catalog records from r.
// The first row must be a header containing at least the required columns.
func (l *CSVLoader) Read(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	// Some exports have ragged rows; we validate cell presence ourselves.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		// io.EOF here means an empty source, which is as unusable as a
		// missing file.
		return nil, fmt.Errorf("%w: no header row: %v", ErrSourceUnavailable, err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	result := &Result{Records: make([]model.ContentRecord, 0)}
	line := 1

	for {
		line++
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A malformed CSV row (bad quoting etc.) is a row-level
			// problem, not a fatal one.
			l.skip(result, line, fmt.Sprintf("unparsable row: %v", err))
			continue
		}

		record, reason := parseRow(index, row)
		if reason != "" {
			l.skip(result, line, reason)
			continue
		}
		result.Records = append(result.Records, record)
	}

	l.logger.Debug("catalog loaded",
		"records", len(result.Records),
		"skipped", len(result.Skipped),
	)

	return result, nil
}

// skip records a dropped row and logs it.
func (l *CSVLoader) skip(result *Result, line int, reason string) {
	result.Skipped = append(result.Skipped, RowError{Line: line, Reason: reason})
	l.logger.Warn("skipping malformed row", "line", line, "reason", reason)
}

// headerIndex maps column names to their positions.
// Header matching is case-insensitive; "cast" and "casts" both identify the
// cast column because exports of the dataset disagree on the spelling.
func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "casts" {
			name = "cast"
		}
		index[name] = i
	}

	for _, required := range requiredColumns {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	return index, nil
}

// cell returns the named column's trimmed value, or "" if the row is too
// short or the column is absent.
func cell(index map[string]int, row []string, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRow converts one CSV row into a ContentRecord.
// It returns a non-empty reason string when the row must be skipped.
func parseRow(index map[string]int, row []string) (model.ContentRecord, string) {
	id := cell(index, row, "show_id")
	if id == "" {
		return model.ContentRecord{}, "missing show_id"
	}

	kind, err := model.ParseKind(cell(index, row, "type"))
	if err != nil {
		return model.ContentRecord{}, fmt.Sprintf("unknown type %q", cell(index, row, "type"))
	}

	yearCell := cell(index, row, "release_year")
	year, err := strconv.Atoi(yearCell)
	if err != nil {
		return model.ContentRecord{}, fmt.Sprintf("unparsable release_year %q", yearCell)
	}

	return model.ContentRecord{
		ID:          id,
		Kind:        kind,
		Title:       cell(index, row, "title"),
		Director:    cell(index, row, "director"),
		Cast:        cell(index, row, "cast"),
		Countries:   cell(index, row, "country"),
		DateAdded:   cell(index, row, "date_added"),
		ReleaseYear: year,
		Rating:      cell(index, row, "rating"),
		Duration:    cell(index, row, "duration"),
		Genres:      cell(index, row, "listed_in"),
		Description: cell(index, row, "description"),
	}, ""
}
