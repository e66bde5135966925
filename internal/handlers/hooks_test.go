// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alhikma/internal/cache"
)

func TestPublishHook(t *testing.T) {
	hooks := NewHooks(cache.NewPageCache(nil, 0), "hook-secret")

	tests := []struct {
		name       string
		secret     string
		wantStatus int
	}{
		{"correct secret", "hook-secret", http.StatusNoContent},
		{"wrong secret", "guess", http.StatusForbidden},
		{"missing secret", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/hooks/publish", nil)
			if tt.secret != "" {
				req.Header.Set("X-Hook-Secret", tt.secret)
			}
			rr := httptest.NewRecorder()
			hooks.Publish(rr, req)
			if rr.Code != tt.wantStatus {
				t.Errorf("got status %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

// With no secret configured the endpoint does not exist.
func TestPublishHookDisabled(t *testing.T) {
	hooks := NewHooks(cache.NewPageCache(nil, 0), "")

	req := httptest.NewRequest(http.MethodPost, "/hooks/publish", nil)
	req.Header.Set("X-Hook-Secret", "anything")
	rr := httptest.NewRecorder()
	hooks.Publish(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", rr.Code)
	}
}
