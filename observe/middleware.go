package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/configsecret/value"
)

// CollectFunc is the signature of a source's collection step.
type CollectFunc func(ctx context.Context) (value.Value, error)

// Middleware wraps source collection with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe CollectFunc when fn is.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are returned unchanged. Spans
//     and logs record them after the error redactor (see WithErrorRedactor).
//   - Ownership: The collected value is passed through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
	redact  func(error) error
}

// NewMiddleware creates a Middleware. Nil components are replaced by no-ops.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = NoopTracer()
	}
	if metrics == nil {
		metrics = NoopMetrics()
	}
	if logger == nil {
		logger = NoopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
		redact:  func(err error) error { return err },
	}
}

// NoopMiddleware returns a Middleware that records nothing.
func NoopMiddleware() *Middleware {
	return NewMiddleware(nil, nil, nil)
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// WithLogger returns a copy of m that logs to logger.
func (m *Middleware) WithLogger(logger Logger) *Middleware {
	out := NewMiddleware(m.tracer, m.metrics, logger)
	out.redact = m.redact
	return out
}

// WithErrorRedactor returns a copy of m that passes collection errors
// through redact before they reach spans and logs. A nil redact is ignored.
func (m *Middleware) WithErrorRedactor(redact func(error) error) *Middleware {
	out := NewMiddleware(m.tracer, m.metrics, m.logger)
	if redact != nil {
		out.redact = redact
	}
	return out
}

// Wrap wraps fn for the source described by meta.
func (m *Middleware) Wrap(meta SourceMeta, fn CollectFunc) CollectFunc {
	logger := m.logger.WithSource(meta)

	return func(ctx context.Context) (value.Value, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		result, err := fn(ctx)

		duration := time.Since(start)
		var recorded error
		if err != nil {
			if recorded = m.redact(err); recorded == nil {
				recorded = err
			}
		}
		m.tracer.EndSpan(span, recorded)
		m.metrics.RecordCollect(ctx, meta, duration, err)

		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: recorded.Error()})
			logger.Error(ctx, "source collection failed", fields...)
			return result, err
		}
		fields = append(fields, Field{Key: "keys", Value: result.Keys()})
		logger.Info(ctx, "source collected", fields...)
		return result, nil
	}
}

// FileLoaded records one merged secret file. Only the variable name, the
// file path and the detected format are logged.
func (m *Middleware) FileLoaded(ctx context.Context, meta SourceMeta, variable, file, format string) {
	m.metrics.RecordFile(ctx, meta, format)
	m.logger.WithSource(meta).Debug(ctx, "secret file merged",
		Field{Key: "variable", Value: variable},
		Field{Key: "file", Value: file},
		Field{Key: "format", Value: format},
	)
}
