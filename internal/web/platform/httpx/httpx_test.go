package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestChainNilHandlerServesNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRequestIDSetsHeaderAndContext(t *testing.T) {
	t.Parallel()

	var fromCtx string
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}), RequestID())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rr.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatal("expected request id header")
	}
	if fromCtx != header {
		t.Fatalf("context id %q != header id %q", fromCtx, header)
	}
}

func TestRecoverPanicReturns500(t *testing.T) {
	t.Parallel()

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}), RecoverPanic())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestMethodNotAllowedAdvertisesAllowed(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(http.MethodPost).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/signout", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if rr.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", rr.Header().Get("Allow"), http.MethodPost)
	}
}
