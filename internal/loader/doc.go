// Package loader reads a raw catalog file into ContentRecord values.
//
// The loader is the only component that performs input I/O. It maps CSV
// headers by name, coerces typed columns (release_year), and leaves
// multi-valued columns as raw delimited strings for lazy splitting by
// reports.
//
// Error policy: a malformed row (missing show_id, unknown type, unparsable
// release_year) is skipped and logged, never aborting the whole load. Only
// an unreadable source or a missing required header is fatal.
package loader
