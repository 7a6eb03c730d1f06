package web

import (
	"flag"
	"testing"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("web-test", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.AdgenBaseURL != "http://localhost:9090" {
		t.Fatalf("AdgenBaseURL = %q", cfg.AdgenBaseURL)
	}
	if cfg.StoreBackend != BackendMemory {
		t.Fatalf("StoreBackend = %q", cfg.StoreBackend)
	}
	if !cfg.SeedDemo {
		t.Fatal("SeedDemo should default on")
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("AWE_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("AWE_STORE", "sqlite")
	t.Setenv("AWE_SQLITE_PATH", "/tmp/test.db")
	t.Setenv("AWE_SEED_DEMO", "false")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Fatalf("StoreBackend = %q", cfg.StoreBackend)
	}
	if cfg.SQLitePath != "/tmp/test.db" {
		t.Fatalf("SQLitePath = %q", cfg.SQLitePath)
	}
	if cfg.SeedDemo {
		t.Fatal("SeedDemo should be off")
	}
}

func TestParseConfigFlagsBeatEnv(t *testing.T) {
	t.Setenv("AWE_HTTP_ADDR", "0.0.0.0:9000")

	cfg, err := parse(t, "-http-addr", "localhost:7000")
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:7000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestParseConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("AWE_STORE", "postgres")

	if _, err := parse(t); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
