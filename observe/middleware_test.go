package observe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jonwraymond/configsecret/value"
)

type middlewareHarness struct {
	mw       *Middleware
	spans    *tracetest.SpanRecorder
	reader   *sdkmetric.ManualReader
	logs     *bytes.Buffer
}

func newMiddlewareHarness(t *testing.T) *middlewareHarness {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	metrics, reader := newManualMetrics(t)
	logs := &bytes.Buffer{}
	return &middlewareHarness{
		mw:     NewMiddleware(NewTracer(tp.Tracer("test")), metrics, NewLoggerWithWriter("debug", logs)),
		spans:  spans,
		reader: reader,
		logs:   logs,
	}
}

func TestMiddleware_WrapSuccess(t *testing.T) {
	h := newMiddlewareHarness(t)
	meta := SourceMeta{Name: "secretfile", Prefix: "APP"}
	want := value.Map(map[string]value.Value{
		"redis": value.Map(map[string]value.Value{"password": value.String("hunter2")}),
	})

	wrapped := h.mw.Wrap(meta, func(context.Context) (value.Value, error) {
		return want, nil
	})
	got, err := wrapped(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(got, want) {
		t.Errorf("value changed by middleware: got %v", got)
	}

	if n := len(h.spans.Ended()); n != 1 {
		t.Errorf("expected 1 span, got %d", n)
	}
	rm := collectMetrics(t, h.reader)
	if got := sumValue(t, rm, "secretfile.collect.total"); got != 1 {
		t.Errorf("collect.total = %d, want 1", got)
	}
	if got := sumValue(t, rm, "secretfile.collect.errors"); got != 0 {
		t.Errorf("collect.errors = %d, want 0", got)
	}

	out := h.logs.String()
	if !strings.Contains(out, "source collected") {
		t.Errorf("expected success log line, got %s", out)
	}
	if strings.Contains(out, "hunter2") {
		t.Fatalf("secret content leaked into logs: %s", out)
	}
}

func TestMiddleware_WrapError(t *testing.T) {
	h := newMiddlewareHarness(t)
	sentinel := errors.New("file not found")

	wrapped := h.mw.Wrap(SourceMeta{Name: "secretfile"}, func(context.Context) (value.Value, error) {
		return value.Value{}, sentinel
	})
	if _, err := wrapped(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected error to pass through unchanged, got %v", err)
	}

	rm := collectMetrics(t, h.reader)
	if got := sumValue(t, rm, "secretfile.collect.errors"); got != 1 {
		t.Errorf("collect.errors = %d, want 1", got)
	}
	entry := decodeLines(t, h.logs)[0]
	if entry["msg"] != "source collection failed" || entry["error"] != "file not found" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}

func TestMiddleware_WithErrorRedactor(t *testing.T) {
	h := newMiddlewareHarness(t)
	cause := errors.New(`expected value but found "SECRETpw"`)
	mw := h.mw.WithErrorRedactor(func(error) error { return errors.New("parse error") })

	wrapped := mw.Wrap(SourceMeta{Name: "secretfile"}, func(context.Context) (value.Value, error) {
		return value.Value{}, cause
	})
	if _, err := wrapped(context.Background()); !errors.Is(err, cause) {
		t.Fatalf("expected the original error to be returned, got %v", err)
	}

	if strings.Contains(h.logs.String(), "SECRETpw") {
		t.Errorf("cause leaked into logs: %s", h.logs.String())
	}
	entry := decodeLines(t, h.logs)[0]
	if entry["error"] != "parse error" {
		t.Errorf("error field = %v, want redacted message", entry["error"])
	}

	spans := h.spans.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if desc := spans[0].Status().Description; desc != "parse error" {
		t.Errorf("span status = %q, want redacted message", desc)
	}
	for _, ev := range spans[0].Events() {
		for _, attr := range ev.Attributes {
			if strings.Contains(attr.Value.Emit(), "SECRETpw") {
				t.Errorf("cause leaked into span event %q", ev.Name)
			}
		}
	}
}

func TestMiddleware_WithErrorRedactorKeptByWithLogger(t *testing.T) {
	h := newMiddlewareHarness(t)
	var logs bytes.Buffer
	mw := h.mw.WithErrorRedactor(func(error) error { return errors.New("redacted") }).
		WithLogger(NewLoggerWithWriter("info", &logs))

	wrapped := mw.Wrap(SourceMeta{Name: "secretfile"}, func(context.Context) (value.Value, error) {
		return value.Value{}, errors.New("raw cause")
	})
	_, _ = wrapped(context.Background())
	if strings.Contains(logs.String(), "raw cause") || !strings.Contains(logs.String(), "redacted") {
		t.Errorf("unexpected logs: %s", logs.String())
	}
}

func TestMiddleware_FileLoaded(t *testing.T) {
	h := newMiddlewareHarness(t)

	h.mw.FileLoaded(context.Background(), SourceMeta{Name: "secretfile"}, "APP_REDIS_FILE", "/run/secrets/redis", "yaml")

	rm := collectMetrics(t, h.reader)
	if got := sumValue(t, rm, "secretfile.files.loaded"); got != 1 {
		t.Errorf("files.loaded = %d, want 1", got)
	}
	entry := decodeLines(t, h.logs)[0]
	if entry["variable"] != "APP_REDIS_FILE" || entry["format"] != "yaml" {
		t.Errorf("unexpected log entry: %v", entry)
	}
}

func TestMiddleware_NilComponents(t *testing.T) {
	mw := NewMiddleware(nil, nil, nil)
	wrapped := mw.Wrap(SourceMeta{Name: "noop"}, func(context.Context) (value.Value, error) {
		return value.EmptyMap(), nil
	})
	if _, err := wrapped(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	NoopMiddleware().FileLoaded(context.Background(), SourceMeta{Name: "noop"}, "V", "f", "json")
}

func TestMiddlewareFromObserver(t *testing.T) {
	if _, err := MiddlewareFromObserver(nil); !errors.Is(err, ErrNilObserver) {
		t.Fatalf("expected ErrNilObserver, got %v", err)
	}

	obs, err := NewObserver(context.Background(), Config{ServiceName: "svc"})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	mw, err := MiddlewareFromObserver(obs)
	if err != nil {
		t.Fatalf("MiddlewareFromObserver() error = %v", err)
	}
	var buf bytes.Buffer
	mw = mw.WithLogger(NewLoggerWithWriter("info", &buf))
	wrapped := mw.Wrap(SourceMeta{Name: "secretfile"}, func(context.Context) (value.Value, error) {
		return value.EmptyMap(), nil
	})
	if _, err := wrapped(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "source collected") {
		t.Errorf("expected log via replaced logger, got %q", buf.String())
	}
}
