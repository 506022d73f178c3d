// Package database provides SQLite-backed storage for the content catalog
// and past report runs.
//
// The catalog table mirrors the source CSV column-for-column so that a
// dataset imported once can feed any number of report runs without re-reading
// the file. Report runs are stored as JSON blobs keyed by report name so the
// history command can replay or compare earlier results.
package database
