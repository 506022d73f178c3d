package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// CaptureHandler wraps an slog.Handler and records the message of every
// record at Warn level or above while still forwarding all records to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Libraries that accept a *slog.Logger capture warnings for free
type CaptureHandler struct {
	// handler is the underlying slog handler that receives every record.
	handler slog.Handler

	// mu guards warnings; reports may log from multiple goroutines.
	mu sync.Mutex

	// warnings holds the messages of captured Warn+ records, in order.
	warnings []string
}

// NewCaptureHandler creates a CaptureHandler wrapping the given handler.
// If handler is nil, the returned CaptureHandler wraps slog.Default().Handler().
func NewCaptureHandler(handler slog.Handler) *CaptureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &CaptureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// Warn+ records are always handled so they can be captured even when the
// underlying handler's level would drop them.
func (h *CaptureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}
	return h.handler.Enabled(ctx, level)
}

// Handle captures Warn+ messages and forwards the record to the underlying
// handler when its level allows it.
func (h *CaptureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.mu.Lock()
		h.warnings = append(h.warnings, r.Message)
		h.mu.Unlock()
	}

	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
// The capture store is shared so warnings from derived loggers are
// visible through the original handler.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{parent: h, handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{parent: h, handler: h.handler.WithGroup(name)}
}

// Warnings returns a copy of the captured Warn+ messages in emission order.
func (h *CaptureHandler) Warnings() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.warnings))
	copy(out, h.warnings)
	return out
}

// WarningCount returns the number of captured Warn+ records.
func (h *CaptureHandler) WarningCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.warnings)
}

// Reset discards the captured warnings.
func (h *CaptureHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.warnings = nil
}

// derivedHandler is produced by WithAttrs/WithGroup. It forwards records to
// its own underlying handler but captures warnings into the root handler.
type derivedHandler struct {
	parent  *CaptureHandler
	handler slog.Handler
}

// Enabled reports whether the handler handles records at the given level.
func (h *derivedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}
	return h.handler.Enabled(ctx, level)
}

// Handle captures Warn+ messages into the root handler and forwards the
// record when the underlying handler's level allows it.
func (h *derivedHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.parent.mu.Lock()
		h.parent.warnings = append(h.parent.warnings, r.Message)
		h.parent.mu.Unlock()
	}

	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *derivedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{parent: h.parent, handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *derivedHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{parent: h.parent, handler: h.handler.WithGroup(name)}
}

// NewLogger creates a logger writing to w together with the capture
// handler recording its warnings.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Returns a *slog.Logger that can be used with slog.SetDefault() or passed
// to components that accept *slog.Logger, plus the CaptureHandler for
// reading the warning summary after a run.
func NewLogger(w io.Writer, verbose bool) (*slog.Logger, *CaptureHandler) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	captureHandler := NewCaptureHandler(textHandler)

	return slog.New(captureHandler), captureHandler
}
