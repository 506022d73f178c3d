// Package model defines the core data structures used throughout streamlens.
//
// This package contains the following main types:
//   - ContentRecord: One catalog entry (movie or TV show) with its attributes
//   - ContentKind: The record type enumeration (movie / TV show)
//   - Duration: A parsed duration string ("90 min" or "3 Seasons")
//   - ResultTable: A column-labeled, ordered row sequence produced by reports
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (loader, report, engine, database) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model
