package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReadMissingCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req, WizardName); ok {
		t.Fatal("expected missing cookie to report false")
	}
	if _, ok := Read(nil, WizardName); ok {
		t.Fatal("expected nil request to report false")
	}
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), WizardName, " session-123 ")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	value, ok := Read(req, WizardName)
	if !ok {
		t.Fatal("expected cookie to be readable")
	}
	if value != "session-123" {
		t.Fatalf("value = %q, want %q", value, "session-123")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "/", nil), DashboardName)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("MaxAge = %d, want -1", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Fatalf("Value = %q, want empty", cookies[0].Value)
	}
}

func TestWriteSetsHTTPOnlyAndLaxSameSite(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), DashboardName, "token")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if !cookies[0].HttpOnly {
		t.Fatal("expected HttpOnly cookie")
	}
	if cookies[0].SameSite != http.SameSiteLaxMode {
		t.Fatalf("SameSite = %v, want Lax", cookies[0].SameSite)
	}
}
