// Package dashboard implements the demo dashboard: account sign-in and a
// protected metrics and profile surface.
package dashboard

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
)

// SessionTTL bounds how long a dashboard session token stays valid.
const SessionTTL = 24 * time.Hour

// IssueToken signs a session token for the user.
func IssueToken(secret []byte, userID string, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("session secret is required")
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a session token and returns its user ID.
func VerifyToken(secret []byte, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("session token is empty")
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return claims.Subject, nil
}

// Resolver builds the shared user-ID resolver: it reads the dashboard
// session cookie and verifies its token.
func Resolver(secret []byte) func(*http.Request) (string, bool) {
	return func(r *http.Request) (string, bool) {
		raw, ok := sessioncookie.Read(r, sessioncookie.DashboardName)
		if !ok {
			return "", false
		}
		userID, err := VerifyToken(secret, raw)
		if err != nil {
			return "", false
		}
		return userID, true
	}
}
