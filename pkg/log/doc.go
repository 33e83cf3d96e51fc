// Package log builds [log/slog] handlers for the command line.
//
// Text and logfmt output are rendered by charmbracelet/log; JSON output uses
// the standard library handler.
package log
