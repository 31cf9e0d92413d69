package exporters

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNewTracingExporter_UnknownName(t *testing.T) {
	_, err := NewTracingExporter(context.Background(), "invalid")
	if err == nil || !strings.Contains(err.Error(), "unknown exporter") {
		t.Fatalf("expected unknown exporter error, got: %v", err)
	}
}

func TestNewTracingExporter_Builtins(t *testing.T) {
	for _, name := range []string{"stdout", "none", ""} {
		exp, err := NewTracingExporter(context.Background(), name)
		if err != nil {
			t.Fatalf("NewTracingExporter(%q) error = %v", name, err)
		}
		if exp == nil {
			t.Fatalf("NewTracingExporter(%q) returned nil exporter", name)
		}
	}
}

func TestNewMetricsReader_Builtins(t *testing.T) {
	for _, name := range []string{"stdout", "none", ""} {
		reader, err := NewMetricsReader(context.Background(), name)
		if err != nil {
			t.Fatalf("NewMetricsReader(%q) error = %v", name, err)
		}
		if reader == nil {
			t.Fatalf("NewMetricsReader(%q) returned nil reader", name)
		}
	}
}

func TestNewMetricsReader_UnknownName(t *testing.T) {
	if _, err := NewMetricsReader(context.Background(), "statsd"); err == nil {
		t.Fatal("expected error for unknown metrics exporter")
	}
}

func TestOTLP_MissingEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_JAEGER_ENDPOINT", "")

	if _, err := NewTracingExporter(context.Background(), "otlp"); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("otlp tracing error = %v, want ErrEndpointNotConfigured", err)
	}
	if _, err := NewTracingExporter(context.Background(), "jaeger"); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("jaeger tracing error = %v, want ErrEndpointNotConfigured", err)
	}
	if _, err := NewMetricsReader(context.Background(), "otlp"); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("otlp metrics error = %v, want ErrEndpointNotConfigured", err)
	}
}
