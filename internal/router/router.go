// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// school site. Everything public lives under a /{locale} subtree; the
// locale redirect heuristic runs before routing so near-miss language
// prefixes land on the default locale instead of a 404.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"alhikma/internal/handlers"
	"alhikma/internal/locale"
	"alhikma/internal/middleware"
	"alhikma/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, hooks *handlers.Hooks, previewSecret string, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}
	r.Use(middleware.RedirectLocale)

	// Health check and publish webhook — outside the locale subtree.
	r.Get("/health", healthHandler)
	r.Post("/hooks/publish", hooks.Publish)

	// Embedded static assets (stylesheet, widget JS, campus photos).
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Bare root: negotiate the visitor's language and send them there.
	r.Get("/", rootRedirect)

	// Localized site.
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(middleware.ResolveLocale(public.NotFound))
		r.Use(middleware.Preview(previewSecret))

		r.Get("/", public.Home)
		r.Get("/events", public.Events)
		r.Get("/events/{slug}", public.Event)
		r.Get("/news", public.News)
		r.Get("/news/{slug}", public.NewsPost)
		r.Get("/gallery", public.Galleries)
		r.Get("/gallery/{slug}", public.Album)

		// Catch-all: structured pages by slug, then legacy site pages by path.
		r.Get("/*", public.Page)
	})

	r.NotFound(public.NotFound)

	return r
}

// rootRedirect sends "/" to the locale matched from Accept-Language.
func rootRedirect(w http.ResponseWriter, r *http.Request) {
	loc := locale.Match(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, "/"+loc.String(), http.StatusFound)
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
