package results

import (
	"fmt"
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/modules/onboarding"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// Module serves the results page for a completed wizard session.
type Module struct {
	sessions *onboarding.SessionStore
}

// New returns a results module reading the given wizard session store.
func New(sessions *onboarding.SessionStore) Module {
	return Module{sessions: sessions}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "results" }

// Mount wires the results route.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if m.sessions == nil {
		return module.Mount{}, fmt.Errorf("results: session store is required")
	}
	mux := http.NewServeMux()
	h := handlers{deps: deps, sessions: m.sessions}
	mux.HandleFunc(http.MethodGet+" "+routepath.GetStartedResults, h.handleResults)
	return module.Mount{Prefix: routepath.GetStartedResults, Handler: mux}, nil
}

type handlers struct {
	deps     module.Dependencies
	sessions *onboarding.SessionStore
}

// handleResults renders the handoff result. A visit without one is not an
// error page: the visitor is sent back to the wizard start.
func (h handlers) handleResults(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessioncookie.Read(r, sessioncookie.WizardName)
	if !ok {
		http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
		return
	}
	result, ok := h.sessions.Result(sessionID)
	if !ok {
		http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
		return
	}

	page := pagerender.Page{
		Title:    "Your campaign",
		Fragment: templates.Results(buildView(result)),
	}
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.deps.Logger.Error().Err(err).Msg("render results page")
	}
}
