package observability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLoggerEmitsOneLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pricing", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["method"] != http.MethodGet {
		t.Fatalf("method = %v, want GET", line["method"])
	}
	if line["path"] != "/pricing" {
		t.Fatalf("path = %v, want /pricing", line["path"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Fatalf("status = %v, want %d", line["status"], http.StatusTeapot)
	}
	if line["level"] != "warn" {
		t.Fatalf("level = %v, want warn for 4xx", line["level"])
	}
}

func TestRequestLoggerUsesErrorLevelFor5xx(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["level"] != "error" {
		t.Fatalf("level = %v, want error for 5xx", line["level"])
	}
}

func TestRequestLoggerDefaultsStatus200(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["status"] != float64(http.StatusOK) {
		t.Fatalf("status = %v, want 200", line["status"])
	}
}
