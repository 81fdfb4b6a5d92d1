// Package logging provides structured logging for iotcore.
//
// It wraps log/slog with level parsing, JSON or text output, and default
// service attributes. Components receive a *Logger and derive their own
// with With("component", name).
package logging
