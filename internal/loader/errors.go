package loader

import "errors"

// Loader errors.
//
// Design decision: We use package-level sentinel errors so callers can use
// errors.Is() to distinguish a fatal, unreadable source from per-row problems
// (which are never returned as errors at all; they are recorded as skipped
// rows in the Result).
var (
	// ErrSourceUnavailable is returned when the catalog source cannot be
	// read at all: the file is missing, unreadable, or contains no header.
	ErrSourceUnavailable = errors.New("catalog source unavailable")

	// ErrMissingColumn is returned when a required column is absent from
	// the CSV header.
	ErrMissingColumn = errors.New("required column missing from header")
)
