package marketing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/awelabs/awe.agency/internal/web/module"
)

func mountForTest(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if catalog.Home.Headline == "" {
		t.Fatal("expected homepage headline")
	}
	if len(catalog.Testimonials) == 0 {
		t.Fatal("expected testimonials")
	}
	if len(catalog.Pricing.Plans) < 2 {
		t.Fatalf("plans = %d, want at least 2", len(catalog.Pricing.Plans))
	}
}

func TestMarketingPages(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t)
	tests := []struct {
		path string
		want string
	}{
		{"/", "Get started"},
		{"/solutions", "Solutions"},
		{"/sustainability", "Sustainability"},
		{"/testimonials", "Testimonials"},
		{"/contact", "hello@awe.agency"},
		{"/pricing", "Pricing"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("body missing %q", tc.want)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	mountForTest(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("status field = %q", payload["status"])
	}
}

func TestUnknownPathRenders404Page(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	mountForTest(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404") {
		t.Fatal("expected rendered 404 page")
	}
}
