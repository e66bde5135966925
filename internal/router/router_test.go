// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alhikma/internal/cache"
	"alhikma/internal/content"
	"alhikma/internal/handlers"
	"alhikma/internal/render"
)

// newTestRouter builds the full route tree against a content stub that has
// no documents at all — enough for routing-level assertions.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": null}`))
	}))
	t.Cleanup(srv.Close)

	client := content.NewClient(content.ClientConfig{BaseURL: srv.URL, Dataset: "production"})
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	pageCache := cache.NewPageCache(nil, 0)
	public := handlers.NewPublic(client, nil, renderer, pageCache, []string{"ar"})
	hooks := handlers.NewHooks(pageCache, "hook-secret")

	return New(public, hooks, "preview-secret", nil)
}

func TestRootRedirectNegotiatesLocale(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header goes to the default", "", "/ar"},
		{"english browser", "en-US,en;q=0.9", "/en"},
		{"italian browser", "it-IT", "/it"},
		{"unsupported language goes to the default", "ja-JP", "/ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusFound {
				t.Fatalf("got status %d, want 302", rr.Code)
			}
			if got := rr.Header().Get("Location"); got != tt.want {
				t.Errorf("Location = %q, want %q", got, tt.want)
			}
		})
	}
}

// The locale redirect heuristic runs before routing: an unsupported
// two-letter prefix lands on the default locale with the path kept.
func TestNearMissLocaleRedirect(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/fr/events?page=2", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("got status %d, want 302", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/ar/events?page=2" {
		t.Errorf("Location = %q, want /ar/events?page=2", got)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/static/site.css", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("got status %d, want 200", rr.Code)
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("request id header missing")
	}
}

func TestPublishHookRouted(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/hooks/publish", nil)
	req.Header.Set("X-Hook-Secret", "hook-secret")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("got status %d, want 204", rr.Code)
	}
}
