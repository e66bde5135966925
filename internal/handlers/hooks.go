// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"alhikma/internal/cache"
)

// Hooks receives publish notifications from the content platform and clears
// the page cache so editorial changes appear without waiting out the TTL.
type Hooks struct {
	pageCache *cache.PageCache
	secret    string
}

// NewHooks creates the webhook handler group. An empty secret disables it.
func NewHooks(pageCache *cache.PageCache, secret string) *Hooks {
	return &Hooks{pageCache: pageCache, secret: secret}
}

// Publish handles POST /hooks/publish. The shared secret arrives in the
// X-Hook-Secret header.
func (h *Hooks) Publish(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" {
		http.NotFound(w, r)
		return
	}
	supplied := r.Header.Get("X-Hook-Secret")
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.secret)) != 1 {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	slog.Info("page cache invalidated by publish hook")
	w.WriteHeader(http.StatusNoContent)
}
