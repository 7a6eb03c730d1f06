// Package module defines the contracts web feature modules implement to be
// mounted on the root handler.
package module

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/awelabs/awe.agency/internal/adgen"
	"github.com/awelabs/awe.agency/internal/store"
)

// Generator submits a completed business profile for ad generation.
type Generator interface {
	Submit(ctx context.Context, sub adgen.Submission) (adgen.Result, error)
}

// Dependencies carries the shared collaborators modules may use. Modules
// take what they need and ignore the rest.
type Dependencies struct {
	Logger          zerolog.Logger
	Store           store.Store
	Generator       Generator
	ResolveLanguage func(*http.Request) string
	ResolveUserID   func(*http.Request) (string, bool)
}

// Mount is the result of mounting a module: a handler, the path prefix it
// owns on the root mux, and any extra root patterns routed to the same
// handler. Prefixes ending in "/" own a subtree; others match exactly.
type Mount struct {
	Prefix  string
	Aliases []string
	Handler http.Handler
}

// Module is a mountable web feature.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}
