// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"8080"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// Content platform (hosted document store queried over HTTP)
	ContentAPIURL  string `env:"CONTENT_API_URL"`
	ContentDataset string `env:"CONTENT_DATASET" envDefault:"production"`
	ContentToken   string `env:"CONTENT_READ_TOKEN"` // enables the preview client
	PreviewSecret  string `env:"PREVIEW_SECRET"`     // shared with the studio's preview button
	HookSecret     string `env:"PUBLISH_HOOK_SECRET"`

	// Valkey (Redis-compatible page cache) — optional, empty host disables it
	ValkeyHost     string        `env:"VALKEY_HOST"`
	ValkeyPort     string        `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string        `env:"VALKEY_PASSWORD"`
	PageCacheTTL   time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`

	// PopupLocales gates the urgent-announcement popup per locale. The
	// product decision for now is Arabic only; widen the list here when
	// that changes rather than in code.
	PopupLocales []string `env:"POPUP_LOCALES" envSeparator:"," envDefault:"ar"`

	// Rate limiting for public traffic
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"240"`
	RateWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.ContentAPIURL == "" {
		return nil, fmt.Errorf("CONTENT_API_URL must be set")
	}
	if cfg.Env == "production" && cfg.PreviewSecret == "" && cfg.ContentToken != "" {
		return nil, fmt.Errorf("PREVIEW_SECRET must be set when a content token is configured in production")
	}

	return &cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
