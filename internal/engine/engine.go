package engine

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/streamlens/internal/model"
	"github.com/nao1215/streamlens/internal/report"
)

// Request names one report to run together with its parameters.
type Request struct {
	// Name is the report name as registered in the report package.
	Name string

	// Params carries the report's parameters.
	Params report.Params
}

// Result is the outcome of one report execution.
// Exactly one of Table and Err is set.
type Result struct {
	// Name is the requested report name.
	Name string

	// Table is the computed result table. Nil when Err is set.
	Table *model.ResultTable

	// Err records a bind failure (unknown report, invalid parameters).
	// Report execution itself cannot fail: empty tables are valid results.
	Err error
}

// Engine runs report requests over an immutable record slice.
// It uses errgroup to manage goroutines and respect the concurrency limit.
//
// Design decision: Concurrency is safe here without copying records because
// every report treats the slice as read-only; the table is immutable after
// load. We still default to a limit rather than unbounded goroutines so a
// `report all` run behaves predictably.
type Engine struct {
	// concurrency is the maximum number of reports running at once.
	concurrency int

	// logger is used for run-level logging.
	logger *slog.Logger

	// continueOnError determines whether remaining reports still run after
	// one request fails to bind. When false, the run stops at the first
	// bind failure.
	continueOnError bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently running reports.
// Default is 4 if not specified.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithContinueOnError configures the engine to keep running remaining
// reports when one request fails to bind. The failure is recorded in that
// request's Result.
func WithContinueOnError(continueOnError bool) Option {
	return func(e *Engine) {
		e.continueOnError = continueOnError
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Run executes every request over records and returns results in request
// order. Bind failures are recorded per result; the returned error is
// non-nil only when the context was cancelled or when a bind failure
// occurred with continueOnError disabled.
func (e *Engine) Run(ctx context.Context, records []model.ContentRecord, requests []Request) ([]Result, error) {
	e.logger.Info("running reports",
		"requests", len(requests),
		"records", len(records),
		"concurrency", e.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate so each goroutine writes its own slot; no mutex needed.
	results := make([]Result, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, req := range requests {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = e.runOne(records, req)

			if results[i].Err != nil {
				e.logger.Warn("report failed",
					"report", req.Name,
					"error", results[i].Err,
				)
				if !e.continueOnError {
					return results[i].Err
				}
				return nil
			}

			e.logger.Debug("report completed",
				"report", req.Name,
				"rows", results[i].Table.Len(),
			)
			return nil
		})
	}

	err := g.Wait()

	e.logger.Info("report run complete",
		"requests", len(requests),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// RunWithCallback executes every request and calls the callback as each
// report completes. This is useful for streaming output. The callback
// receives the result and the index of the request in the original slice;
// it is called from the goroutine that ran the report, so it must be
// thread-safe if it accesses shared state.
func (e *Engine) RunWithCallback(
	ctx context.Context,
	records []model.ContentRecord,
	requests []Request,
	callback func(result Result, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i, req := range requests {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result := e.runOne(records, req)
			callback(result, i)

			if result.Err != nil && !e.continueOnError {
				return result.Err
			}
			return nil
		})
	}

	return g.Wait()
}

// runOne binds and executes a single request.
func (e *Engine) runOne(records []model.ContentRecord, req Request) Result {
	fn, err := report.Bind(req.Name, req.Params)
	if err != nil {
		return Result{Name: req.Name, Err: err}
	}
	return Result{Name: req.Name, Table: fn(records)}
}
