// Package logging assembles structured slog loggers and formatting helpers used
// across dupesweep.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so sweep code can tag log lines with the
// run ID and the directory being processed. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Logs describe what the sweep did; the human-readable removal report is
// written separately by the report package so the two streams never mix.
package logging
