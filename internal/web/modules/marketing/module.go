// Package marketing serves the public marketing pages and health check.
package marketing

import (
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// Module provides the public marketing routes, mounted at the site root.
type Module struct{}

// New returns a marketing module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "marketing" }

// Mount wires marketing route handlers. The module owns the root prefix
// and the site-wide 404 page.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	h := handlers{deps: deps, catalog: catalog}
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
