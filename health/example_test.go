package health_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/jonwraymond/configsecret/health"
	"github.com/jonwraymond/configsecret/secretfile"
)

func ExampleNewSourceChecker() {
	dir, _ := os.MkdirTemp("", "secrets")
	defer func() { _ = os.RemoveAll(dir) }()
	path := filepath.Join(dir, "db.json")
	_ = os.WriteFile(path, []byte(`{"user":"app"}`), 0o600)

	src, _ := secretfile.New(secretfile.Config{Prefix: "APP", KeyCase: secretfile.KeyCaseLower},
		secretfile.WithEnviron(secretfile.MapEnviron(map[string]string{"APP_DB_FILE": path})))

	result := health.NewSourceChecker("secrets", src).Check(context.Background())
	fmt.Println(result.Status, result.Details["keys"])
	// Output: healthy [db]
}

func ExampleReadinessHandler() {
	src, _ := secretfile.New(secretfile.Config{Prefix: "APP"},
		secretfile.WithEnviron(secretfile.MapEnviron(map[string]string{"APP_DB_FILE": "/nonexistent/db.json"})))

	agg := health.NewAggregator()
	_ = agg.Register(health.NewSourceChecker("secrets", src))

	rec := httptest.NewRecorder()
	health.ReadinessHandler(agg)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	fmt.Println(rec.Code, rec.Body.String())
	// Output: 503 UNHEALTHY
}
