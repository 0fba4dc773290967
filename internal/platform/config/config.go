// Copyright (c) 2026 Aeris Labs. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, TokenService) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Aeris API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret is the HMAC-SHA256 signing secret for access tokens.
	//
	// It is deliberately environment-only: a secret baked into the binary
	// cannot be rotated. Rotating the secret invalidates every outstanding
	// token at once.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTLMinutes is the access-token lifetime in minutes.
	TokenTTLMinutes int `env:"TOKEN_TTL_MINUTES" envDefault:"30"`

	// PasswordMaxBytes is the truncation limit applied to passwords before
	// hashing and before verification (bcrypt accepts at most 72 bytes).
	PasswordMaxBytes int `env:"PASSWORD_MAX_BYTES" envDefault:"72"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.TokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("config: TOKEN_TTL_MINUTES must be positive, got %d", cfg.TokenTTLMinutes)
	}

	return cfg, nil
}

// TokenTTL returns the configured access-token lifetime as a [time.Duration].
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
