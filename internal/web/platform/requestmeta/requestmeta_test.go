package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{
			name: "origin same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://awe.example.test/app/dashboard/profile", nil)
				req.Host = "awe.example.test"
				req.Header.Set("Origin", "https://awe.example.test")
				return req
			}(),
			want: true,
		},
		{
			name: "referer same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://awe.example.test/signout", nil)
				req.Host = "awe.example.test"
				req.Header.Set("Referer", "https://awe.example.test/app/dashboard")
				return req
			}(),
			want: true,
		},
		{
			name: "origin scheme mismatch",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://awe.example.test/signout", nil)
				req.Host = "awe.example.test"
				req.Header.Set("Origin", "http://awe.example.test")
				return req
			}(),
			want: false,
		},
		{
			name: "origin missing non-default port",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://awe.example.test:8443/signout", nil)
				req.Host = "awe.example.test:8443"
				req.Header.Set("Origin", "https://awe.example.test")
				return req
			}(),
			want: false,
		},
		{
			name: "missing origin and referer",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://awe.example.test/signout", nil)
				req.Host = "awe.example.test"
				return req
			}(),
			want: false,
		},
		{
			name: "nil request",
			req:  nil,
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProof(tc.req); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatal("expected nil request to be non-https")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if IsHTTPS(req) {
		t.Fatal("expected http URL to be non-https")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req) {
		t.Fatal("expected TLS request to be https")
	}
}
