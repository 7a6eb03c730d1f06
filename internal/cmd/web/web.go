// Package web wires configuration, storage, and the ad generation client
// into the running web service.
package web

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/awelabs/awe.agency/internal/adgen"
	"github.com/awelabs/awe.agency/internal/platform/config"
	"github.com/awelabs/awe.agency/internal/platform/otel"
	"github.com/awelabs/awe.agency/internal/store"
	"github.com/awelabs/awe.agency/internal/store/memory"
	"github.com/awelabs/awe.agency/internal/store/sqlite"
	websrv "github.com/awelabs/awe.agency/internal/web"
	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/modules/dashboard"
	"github.com/awelabs/awe.agency/internal/web/modules/onboarding"
	"github.com/awelabs/awe.agency/internal/web/platform/i18n"
)

// Storage backends selectable through configuration.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the web command configuration. Environment variables provide
// the defaults; flags override them.
type Config struct {
	HTTPAddr      string `env:"AWE_HTTP_ADDR" envDefault:"localhost:8080"`
	AdgenBaseURL  string `env:"AWE_ADGEN_URL" envDefault:"http://localhost:9090"`
	SessionSecret string `env:"AWE_SESSION_SECRET"`
	StoreBackend  string `env:"AWE_STORE" envDefault:"memory"`
	SQLitePath    string `env:"AWE_SQLITE_PATH" envDefault:"awe.db"`
	SeedDemo      bool   `env:"AWE_SEED_DEMO" envDefault:"true"`
}

// ParseConfig loads the environment (including a local .env when present)
// and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	config.LoadDotEnv("")

	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AdgenBaseURL, "adgen-url", cfg.AdgenBaseURL, "ad generation service base URL")
	fs.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "storage backend (memory or sqlite)")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "sqlite database path")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "seed the demo account on startup")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch strings.TrimSpace(cfg.StoreBackend) {
	case BackendMemory, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.StoreBackend)
	}

	return cfg, nil
}

// Run starts the web service and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "web").Logger()

	shutdownTracing, err := otel.Setup(ctx, "awe-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("shutdown tracing")
		}
	}()

	dataStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := dataStore.Close(); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	if cfg.SeedDemo {
		if err := store.SeedDemo(ctx, dataStore); err != nil {
			return fmt.Errorf("seed demo account: %w", err)
		}
	}

	generator, err := adgen.NewClient(cfg.AdgenBaseURL, nil)
	if err != nil {
		return fmt.Errorf("init ad generation client: %w", err)
	}

	secret, err := sessionSecret(cfg, logger)
	if err != nil {
		return err
	}

	server, err := websrv.NewServer(websrv.Config{
		HTTPAddr: cfg.HTTPAddr,
		Dependencies: module.Dependencies{
			Logger:          logger,
			Store:           dataStore,
			Generator:       generator,
			ResolveLanguage: i18n.ResolveLanguage,
			ResolveUserID:   dashboard.Resolver(secret),
		},
		WizardSessions: onboarding.NewSessionStore(onboarding.DefaultSessionTTL),
		SessionSecret:  secret,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	logger.Info().
		Str("addr", cfg.HTTPAddr).
		Str("store", cfg.StoreBackend).
		Msg("web listening")
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func openStore(cfg Config) (store.Store, error) {
	switch strings.TrimSpace(cfg.StoreBackend) {
	case BackendSQLite:
		return sqlite.Open(cfg.SQLitePath)
	default:
		return memory.New(), nil
	}
}

// sessionSecret returns the configured secret, or a random per-process one.
// Ephemeral secrets invalidate dashboard sessions on restart.
func sessionSecret(cfg Config, logger zerolog.Logger) ([]byte, error) {
	if trimmed := strings.TrimSpace(cfg.SessionSecret); trimmed != "" {
		return []byte(trimmed), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	logger.Warn().Msg("AWE_SESSION_SECRET not set, using ephemeral secret")
	return secret, nil
}
