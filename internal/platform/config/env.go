// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads a .env file into the process environment when present.
// A missing file is fine; only local development ships one.
func LoadDotEnv(path string) {
	if path == "" {
		path = ".env"
	}
	_ = godotenv.Load(path)
}
