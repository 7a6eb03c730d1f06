// Package httpx provides shared HTTP middleware and handler helpers.
package httpx

import (
	"context"
	"net/http"

	"github.com/awelabs/awe.agency/internal/platform/id"
)

// RequestIDHeader carries the per-request identifier on responses.
const RequestIDHeader = "X-Request-Id"

// Middleware wraps an HTTP handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to a handler, outermost first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		h = middlewares[i](h)
	}
	return h
}

type requestIDKey struct{}

// RequestID assigns each request a fresh identifier, exposed on the response
// header and the request context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, err := id.NewID()
			if err == nil {
				w.Header().Set(RequestIDHeader, requestID)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDFromContext returns the request identifier when one was assigned.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// RecoverPanic converts handler panics into 500 responses instead of
// tearing down the connection.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// MethodNotAllowed returns a handler that rejects the request, advertising
// the allowed method.
func MethodNotAllowed(allowed string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowed)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
