// Package engine executes sets of named reports over a loaded record table.
//
// Reports are pure, read-only functions, so the engine may run any number of
// them concurrently over the same slice without synchronization. Results are
// returned in request order regardless of completion order.
package engine
