// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "https://content.example.org/v1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.ContentDataset != "production" {
		t.Errorf("dataset = %q, want production", cfg.ContentDataset)
	}
	if cfg.PageCacheTTL != 5*time.Minute {
		t.Errorf("PageCacheTTL = %v, want 5m", cfg.PageCacheTTL)
	}
	// The popup defaults to Arabic only.
	if len(cfg.PopupLocales) != 1 || cfg.PopupLocales[0] != "ar" {
		t.Errorf("PopupLocales = %v, want [ar]", cfg.PopupLocales)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "https://content.example.org/v1")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("POPUP_LOCALES", "ar,en")
	t.Setenv("PAGE_CACHE_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9000", cfg.Addr())
	}
	if cfg.IsDev() {
		t.Error("production env should not be dev")
	}
	if len(cfg.PopupLocales) != 2 || cfg.PopupLocales[1] != "en" {
		t.Errorf("PopupLocales = %v, want [ar en]", cfg.PopupLocales)
	}
	if cfg.PageCacheTTL != 90*time.Second {
		t.Errorf("PageCacheTTL = %v, want 90s", cfg.PageCacheTTL)
	}
}

func TestLoadRequiresContentAPIURL(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected an error when CONTENT_API_URL is unset")
	}
}

func TestLoadProductionPreviewGuard(t *testing.T) {
	t.Setenv("CONTENT_API_URL", "https://content.example.org/v1")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CONTENT_READ_TOKEN", "tok")
	t.Setenv("PREVIEW_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("expected an error: a content token without a preview secret in production")
	}

	t.Setenv("PREVIEW_SECRET", "s3cret")
	if _, err := Load(); err != nil {
		t.Errorf("Load with preview secret: %v", err)
	}
}
