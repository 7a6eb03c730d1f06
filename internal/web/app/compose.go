// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/platform/requestmeta"
	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies     module.Dependencies
	PublicModules    []module.Module
	ProtectedModules []module.Module
}

// Compose builds a root HTTP handler from module groups. Protected modules
// must mount under the app prefix; they get auth-redirect and same-origin
// wrapping.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	authenticated := func(*http.Request) bool { return false }
	if input.Dependencies.ResolveUserID != nil {
		authenticated = func(r *http.Request) bool {
			_, ok := input.Dependencies.ResolveUserID(r)
			return ok
		}
	}

	for _, feature := range input.PublicModules {
		if err := mountModule(root, feature, input.Dependencies, seen, false, nil); err != nil {
			return nil, err
		}
	}
	wrap := wrapProtectedModule(authenticated)
	for _, feature := range input.ProtectedModules {
		if err := mountModule(root, feature, input.Dependencies, seen, true, wrap); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	deps module.Dependencies,
	seen map[string]string,
	protected bool,
	wrap func(http.Handler) http.Handler,
) error {
	if feature == nil {
		return fmt.Errorf("module is nil")
	}
	mount, err := feature.Mount(deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return fmt.Errorf("mount module %q: handler is required", feature.ID())
	}

	handler := mount.Handler
	if wrap != nil {
		handler = wrap(handler)
	}

	for _, prefix := range append([]string{mount.Prefix}, mount.Aliases...) {
		prefix = normalizePrefix(prefix)
		if prefix == "" {
			return fmt.Errorf("mount module %q: prefix is required", feature.ID())
		}
		if protected != isProtectedPrefix(prefix) {
			if protected {
				return fmt.Errorf("module %q must mount under %s, got %q", feature.ID(), routepath.AppPrefix, prefix)
			}
			return fmt.Errorf("module %q has protected prefix %q in public group", feature.ID(), prefix)
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, handler)
	}
	return nil
}

func isProtectedPrefix(prefix string) bool {
	return strings.HasPrefix(prefix, routepath.AppPrefix)
}

// normalizePrefix ensures a leading slash. Trailing slashes are kept as
// given: a prefix ending in "/" owns a subtree, anything else matches one
// path exactly.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				http.Redirect(w, r, routepath.SignIn, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapProtectedModule(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	authWrap := requireAuth(authenticated)
	csrfWrap := requireCookieSessionSameOrigin()
	return func(next http.Handler) http.Handler {
		return authWrap(csrfWrap(next))
	}
}

// requireCookieSessionSameOrigin rejects mutating cookie-bearing requests
// without same-origin proof.
func requireCookieSessionSameOrigin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r, sessioncookie.DashboardName)
	return ok
}
