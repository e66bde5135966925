// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"alhikma/internal/locale"
)

func TestRedirectLocale(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantRedirect string // empty means pass through
	}{
		{"unsupported two-letter code", "/fr/events", "/ar/events"},
		{"unsupported code at root", "/de", "/ar"},
		{"supported codes pass", "/en/events", ""},
		{"default locale passes", "/ar", ""},
		{"three-letter segment passes", "/abc/events", ""},
		{"one-letter segment passes", "/x", ""},
		{"deep path keeps its tail", "/fr/news/some-post", "/ar/news/some-post"},
		{"root passes", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var passed bool
			handler := RedirectLocale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				passed = true
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if tt.wantRedirect == "" {
				if !passed {
					t.Fatalf("request to %s should pass through, got status %d", tt.path, rr.Code)
				}
				return
			}
			if passed {
				t.Fatalf("request to %s should redirect, but reached the handler", tt.path)
			}
			if rr.Code != http.StatusFound {
				t.Errorf("got status %d, want 302", rr.Code)
			}
			if got := rr.Header().Get("Location"); got != tt.wantRedirect {
				t.Errorf("Location = %q, want %q", got, tt.wantRedirect)
			}
		})
	}
}

func TestRedirectLocalePreservesQuery(t *testing.T) {
	handler := RedirectLocale(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/fr/events?section=primary&page=2", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	want := "/ar/events?section=primary&page=2"
	if got := rr.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestResolveLocale(t *testing.T) {
	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	var gotLocale locale.Locale
	r := chi.NewRouter()
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(ResolveLocale(notFound))
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			gotLocale = LocaleFromCtx(req.Context())
			w.WriteHeader(http.StatusOK)
		})
	})

	// Supported locale reaches the handler with the locale in context.
	req := httptest.NewRequest(http.MethodGet, "/it/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if gotLocale != locale.Italian {
		t.Errorf("context locale = %q, want it", gotLocale)
	}

	// Unsupported value gets the not-found handler.
	req = httptest.NewRequest(http.MethodGet, "/xyz/", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rr.Code)
	}
}

func TestLocaleFromCtxDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := LocaleFromCtx(req.Context()); got != locale.Default {
		t.Errorf("got %q, want the default %q", got, locale.Default)
	}
}
