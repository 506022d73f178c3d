package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoReport is returned when no report name is specified.
	// This error occurs when the report command gets no positional argument.
	ErrNoReport = errors.New("no report specified: provide a report name or 'all'")

	// ErrNoDataset is returned when neither a CSV path nor the catalog
	// database is available as a record source.
	ErrNoDataset = errors.New("no dataset specified: provide --input or import a catalog first")

	// ErrConflictingFormats is returned when more than one of --json,
	// --markdown, and --csv is specified. Only one output format can be
	// used at a time.
	ErrConflictingFormats = errors.New("conflicting output formats: --json, --markdown, and --csv cannot be combined")

	// ErrInvalidConcurrency is returned when the concurrency limit is not
	// positive. A limit of zero would mean no reports run at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
