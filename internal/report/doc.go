// Package report provides the catalog report functions and output writers.
//
// Each report is a pure function over the full record slice producing a
// ResultTable. Reports never mutate records and never fail on empty results,
// so any subset of them can run concurrently over the same table.
//
// The package also contains writers for different output formats:
//   - TextWriter: Human-readable aligned columns for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown tables and charts
//   - CSVWriter: Delimited text for spreadsheet import
//
// Design decision: We separate report computation from report rendering
// (writers operate only on ResultTable) so adding an output format never
// touches query logic. Writers implement the Writer interface, allowing them
// to be used interchangeably and composed for multi-format output.
package report
