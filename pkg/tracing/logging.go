package tracing

import (
	"context"
	"log/slog"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

// Tracer starts timed spans.
// See [LoggingTracer] for an implementation.
type Tracer interface {
	StartSpan(ctx context.Context, operationName string) Span
}

// Span measures a single operation.
type Span interface {
	SetAttr(key string, value any)
	Finish()
}

// LoggingTracer writes a debug record with the elapsed time when a span
// finishes.
type LoggingTracer struct {
	logger *slog.Logger
}

// NewLoggingTracer creates a new [LoggingTracer]. A nil logger uses
// [slog.Default] at the time each span finishes.
func NewLoggingTracer(logger *slog.Logger) LoggingTracer {
	return LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(ctx context.Context, operationName string) Span {
	return &loggingSpan{
		ctx:           ctx,
		logger:        l.logger,
		operationName: operationName,
		start:         time.Now(),
	}
}

type loggingSpan struct {
	ctx           context.Context //nolint:containedctx // Used only by Finish.
	start         time.Time
	logger        *slog.Logger
	operationName string
	attrs         []any
}

func (s *loggingSpan) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, slog.Any(key, value))
}

func (s *loggingSpan) Finish() {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := append(s.attrs,
		slog.String("operation_name", s.operationName),
		slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
	)
	logger.Log(s.ctx, slog.LevelDebug, "trace", attrs...)
}
