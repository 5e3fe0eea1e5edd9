// Package logging assembles structured slog loggers and formatting helpers used
// across wordfreq commands.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so component code can automatically tag
// log lines with run IDs and component names. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Logs default to stderr: stdout belongs to command results such as the
// counter's integer.
package logging
