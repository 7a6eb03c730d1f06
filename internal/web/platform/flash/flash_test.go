package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carryCookies(t *testing.T, rr *httptest.ResponseRecorder, req *http.Request) {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "/signin", nil), NoticeSuccess("Welcome back!"))

	req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	carryCookies(t, rr, req)

	rr2 := httptest.NewRecorder()
	notice, ok := ReadAndClear(rr2, req)
	if !ok {
		t.Fatal("expected a notice")
	}
	if notice.Kind != KindSuccess {
		t.Fatalf("Kind = %q, want success", notice.Kind)
	}
	if notice.Message != "Welcome back!" {
		t.Fatalf("Message = %q", notice.Message)
	}

	// Reading also expires the cookie.
	cookies := rr2.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected cookie to be cleared, got %v", cookies)
	}
}

func TestReadAndClearMissingCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatal("expected no notice")
	}
}

func TestWriteRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: KindInfo, Message: "   "})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie for empty message")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "shout", Message: "hi"})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected unknown kind to be rejected")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!!!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatal("expected garbage cookie to be ignored")
	}
}
