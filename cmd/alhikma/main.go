// Package main is the entry point for the Al-Hikma school website server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alhikma/internal/cache"
	"alhikma/internal/config"
	"alhikma/internal/content"
	"alhikma/internal/handlers"
	"alhikma/internal/middleware"
	"alhikma/internal/render"
	"alhikma/internal/router"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"dataset", cfg.ContentDataset,
	)

	// Connect to Valkey for the full-page HTML cache. The cache is optional:
	// with no host configured the site renders every request from the
	// content API.
	var pageCache *cache.PageCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	} else {
		slog.Warn("valkey not configured — page cache disabled")
		pageCache = cache.NewPageCache(nil, 0)
	}

	// Content API clients. The published client serves regular traffic; the
	// preview client (drafts perspective) only exists when a read token is
	// configured, and is selected per-request by the preview middleware.
	published := content.NewClient(content.ClientConfig{
		BaseURL: cfg.ContentAPIURL,
		Dataset: cfg.ContentDataset,
	})
	var preview *content.Client
	if cfg.ContentToken != "" {
		preview = content.NewClient(content.ClientConfig{
			BaseURL: cfg.ContentAPIURL,
			Dataset: cfg.ContentDataset,
			Token:   cfg.ContentToken,
			Preview: true,
		})
	} else {
		slog.Warn("content read token not configured — draft preview disabled")
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Create handler groups with their dependencies.
	public := handlers.NewPublic(published, preview, renderer, pageCache, cfg.PopupLocales)
	hooks := handlers.NewHooks(pageCache, cfg.HookSecret)

	// Per-IP rate limiting for public traffic.
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Stop()

	// Set up the Chi router with all middleware and routes.
	r := router.New(public, hooks, cfg.PreviewSecret, limiter)

	// Create the HTTP server with sensible timeouts. Page composition fans
	// out several content API queries, so the write timeout leaves room for
	// a slow upstream.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
