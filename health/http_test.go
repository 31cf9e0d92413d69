package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("liveness = %d %q", rec.Code, rec.Body.String())
	}
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		wantCode int
		wantBody string
	}{
		{"healthy", Healthy("ok"), http.StatusOK, "OK"},
		{"degraded", Degraded("empty"), http.StatusOK, "DEGRADED"},
		{"unhealthy", Unhealthy("failed", errors.New("boom")), http.StatusServiceUnavailable, "UNHEALTHY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator()
			_ = agg.Register(staticChecker("secrets", tt.result))

			rec := httptest.NewRecorder()
			ReadinessHandler(agg)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.wantCode || rec.Body.String() != tt.wantBody {
				t.Errorf("readiness = %d %q, want %d %q", rec.Code, rec.Body.String(), tt.wantCode, tt.wantBody)
			}
		})
	}
}

func TestDetailedHandler(t *testing.T) {
	agg := NewAggregator()
	_ = agg.Register(staticChecker("secrets", Unhealthy("collection failed", errors.New("secretfile: file not found"))))
	_ = agg.Register(staticChecker("other", Healthy("ok").WithDetails(map[string]any{"keys": []string{"redis"}})))

	rec := httptest.NewRecorder()
	DetailedHandler(agg)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if len(resp.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %+v", resp.Checks)
	}
	other, secrets := resp.Checks[0], resp.Checks[1]
	if other.Name != "other" || other.Status != "healthy" {
		t.Errorf("other check = %+v", other)
	}
	if secrets.Name != "secrets" || secrets.Error != "secretfile: file not found" {
		t.Errorf("secrets check = %+v", secrets)
	}
}

func TestNewHealthResponse(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := NewHealthResponse(map[string]Result{
		"b": Degraded("empty"),
		"a": Healthy("ok"),
	}, now)

	if resp.Status != "degraded" || resp.Timestamp != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected response header: %+v", resp)
	}
	if len(resp.Checks) != 2 || resp.Checks[0].Name != "a" || resp.Checks[1].Name != "b" {
		t.Errorf("checks not sorted by name: %+v", resp.Checks)
	}
}

func TestRegisterHandlers(t *testing.T) {
	agg := NewAggregator()
	_ = agg.Register(staticChecker("secrets", Healthy("ok")))
	mux := http.NewServeMux()
	RegisterHandlers(mux, agg)

	for _, path := range []string{"/healthz", "/readyz", "/health"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s = %d, want 200", path, rec.Code)
		}
	}
}
