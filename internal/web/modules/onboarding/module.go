package onboarding

import (
	"fmt"
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// Module provides the get-started wizard routes.
type Module struct {
	sessions *SessionStore
}

// New returns an onboarding module backed by the given session store. The
// store is shared with the results module, which reads the handoff slot.
func New(sessions *SessionStore) Module {
	return Module{sessions: sessions}
}

// Sessions exposes the session store for collaborating modules.
func (m Module) Sessions() *SessionStore { return m.sessions }

// ID returns a stable module identifier.
func (Module) ID() string { return "onboarding" }

// Mount wires wizard route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if m.sessions == nil {
		return module.Mount{}, fmt.Errorf("onboarding: session store is required")
	}
	if deps.Generator == nil {
		return module.Mount{}, fmt.Errorf("onboarding: generator is required")
	}
	mux := http.NewServeMux()
	h := handlers{deps: deps, sessions: m.sessions}
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.GetStartedPrefix, Handler: mux}, nil
}
