// Package web assembles the feature modules into the HTTP server for the
// marketing site and funnel.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/awelabs/awe.agency/internal/web/app"
	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/modules/dashboard"
	"github.com/awelabs/awe.agency/internal/web/modules/marketing"
	"github.com/awelabs/awe.agency/internal/web/modules/onboarding"
	"github.com/awelabs/awe.agency/internal/web/modules/results"
	"github.com/awelabs/awe.agency/internal/web/platform/httpx"
	"github.com/awelabs/awe.agency/internal/web/platform/observability"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/static"
)

// defaultReadHeaderTimeout bounds how long a client may take to send headers.
const defaultReadHeaderTimeout = 5 * time.Second

// defaultShutdownTimeout bounds graceful drain on shutdown.
const defaultShutdownTimeout = 5 * time.Second

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr       string
	Dependencies   module.Dependencies
	WizardSessions *onboarding.SessionStore
	SessionSecret  []byte
}

// Server hosts the site's HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler mounts every feature module plus static assets and wraps the
// result with the shared middleware stack.
func NewHandler(config Config) (http.Handler, error) {
	if config.WizardSessions == nil {
		return nil, errors.New("wizard session store is required")
	}
	if len(config.SessionSecret) == 0 {
		return nil, errors.New("session secret is required")
	}

	composed, err := app.Compose(app.ComposeInput{
		Dependencies: config.Dependencies,
		PublicModules: []module.Module{
			marketing.New(),
			onboarding.New(config.WizardSessions),
			results.New(config.WizardSessions),
			dashboard.NewAccount(config.SessionSecret),
		},
		ProtectedModules: []module.Module{
			dashboard.NewApp(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))
	rootMux.Handle("/", composed)

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(config.Dependencies.Logger),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
