package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "empty header", header: "", want: "en"},
		{name: "english", header: "en-US,en;q=0.9", want: "en"},
		{name: "spanish", header: "es-MX,es;q=0.8", want: "es"},
		{name: "portuguese", header: "pt-BR", want: "pt"},
		{name: "unsupported falls back", header: "ja-JP", want: "en"},
		{name: "garbage falls back", header: ";;;", want: "en"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}
			if got := ResolveLanguage(req); got != tc.want {
				t.Fatalf("ResolveLanguage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveLanguageNilRequest(t *testing.T) {
	t.Parallel()

	if got := ResolveLanguage(nil); got != DefaultLanguage {
		t.Fatalf("ResolveLanguage(nil) = %q, want %q", got, DefaultLanguage)
	}
}
