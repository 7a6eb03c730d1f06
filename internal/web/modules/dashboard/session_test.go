package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
)

var testSecret = []byte("test-secret-0123456789")

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := IssueToken(testSecret, "user_1", time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	userID, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != "user_1" {
		t.Fatalf("userID = %q", userID)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueToken(testSecret, "user_1", time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := VerifyToken([]byte("other-secret"), token); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	token, err := IssueToken(testSecret, "user_1", time.Now().Add(-2*SessionTTL))
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	if _, err := VerifyToken(testSecret, token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "not.a.token"} {
		if _, err := VerifyToken(testSecret, raw); err == nil {
			t.Fatalf("VerifyToken(%q) should fail", raw)
		}
	}
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := IssueToken(nil, "user_1", time.Now()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestResolver(t *testing.T) {
	t.Parallel()

	resolve := Resolver(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	if _, ok := resolve(req); ok {
		t.Fatal("request without cookie must not resolve")
	}

	token, err := IssueToken(testSecret, "user_1", time.Now())
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	req.AddCookie(&http.Cookie{Name: sessioncookie.DashboardName, Value: token})
	userID, ok := resolve(req)
	if !ok || userID != "user_1" {
		t.Fatalf("resolve = %q, %v", userID, ok)
	}

	bad := httptest.NewRequest(http.MethodGet, "/app/dashboard", nil)
	bad.AddCookie(&http.Cookie{Name: sessioncookie.DashboardName, Value: "tampered"})
	if _, ok := resolve(bad); ok {
		t.Fatal("tampered cookie must not resolve")
	}
}
