// Package main provides the entry point for the streamlens CLI.
//
// streamlens answers catalog questions about a Netflix-style content dataset.
// It loads a CSV export (or a previously imported SQLite catalog) and runs
// one or more of the built-in reports over it.
//
// Usage:
//
//	streamlens report count-by-type -i netflix_titles.csv
//	streamlens report all -i netflix_titles.csv
//
// See --help for all available options.
package main

// main is the entry point for streamlens.
func main() {
	Execute()
}
