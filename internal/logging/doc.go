// Package logging assembles the structured slog loggers used across bindery.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so pass code tags log lines with
// categories, titles, and candidate prefixes consistently. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits diagnostics with the same shape.
package logging
