package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records collection metrics for configuration sources.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCollect records one Collect call with its duration and outcome.
	RecordCollect(ctx context.Context, meta SourceMeta, duration time.Duration, err error)

	// RecordFile records one secret file loaded with the given format.
	RecordFile(ctx context.Context, meta SourceMeta, format string)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	fileCount    metric.Int64Counter
}

// NewMetrics creates the source instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	totalCount, err := meter.Int64Counter(
		"secretfile.collect.total",
		metric.WithDescription("Total number of source collections"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"secretfile.collect.errors",
		metric.WithDescription("Total number of failed source collections"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"secretfile.collect.duration_ms",
		metric.WithDescription("Source collection duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	fileCount, err := meter.Int64Counter(
		"secretfile.files.loaded",
		metric.WithDescription("Secret files loaded and merged"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		fileCount:    fileCount,
	}, nil
}

func sourceAttrs(meta SourceMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("source.id", meta.SourceID()),
		attribute.String("source.name", meta.Name),
	}
	if meta.Prefix != "" {
		attrs = append(attrs, attribute.String("source.prefix", meta.Prefix))
	}
	return attrs
}

func (m *metricsImpl) RecordCollect(ctx context.Context, meta SourceMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(sourceAttrs(meta)...)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

func (m *metricsImpl) RecordFile(ctx context.Context, meta SourceMeta, format string) {
	attrs := append(sourceAttrs(meta), attribute.String("file.format", format))
	m.fileCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

type noopMetrics struct{}

// NoopMetrics returns a Metrics that records nothing.
func NoopMetrics() Metrics { return noopMetrics{} }

func (noopMetrics) RecordCollect(context.Context, SourceMeta, time.Duration, error) {}

func (noopMetrics) RecordFile(context.Context, SourceMeta, string) {}
