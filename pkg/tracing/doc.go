// Package tracing times operations and reports them through [log/slog].
package tracing
