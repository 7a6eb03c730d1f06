// Package sessioncookie centralizes session cookie behavior.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/awelabs/awe.agency/internal/web/platform/requestmeta"
)

// WizardName is the cookie keying a server-side onboarding wizard session.
const WizardName = "awe_wizard"

// DashboardName is the cookie carrying the demo dashboard session token.
const DashboardName = "awe_session"

// Read returns the trimmed cookie value when present.
func Read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write sets the named session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, name, value string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    strings.TrimSpace(value),
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the named session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request, name string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
