// Package log provides logging for the CLI, built on top of the standard
// slog package.
//
// Beyond level configuration, the package offers a CaptureHandler that
// remembers warnings emitted during a run. The loader logs one warning per
// skipped row; capturing them lets the CLI print a compact summary after
// the report output instead of interleaving warnings with the table.
//
// # Usage
//
//	logger, captured := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	// ... run reports ...
//	for _, w := range captured.Warnings() {
//	    fmt.Fprintln(os.Stderr, w)
//	}
package log
