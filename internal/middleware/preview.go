// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
)

const previewContextKey contextKey = "preview"

// Preview marks a request as draft-preview when it carries the shared
// editorial secret, either as a ?preview= query parameter or an
// X-Preview-Secret header. The flag only selects which content client the
// handlers use; it grants nothing else. An empty configured secret disables
// preview entirely.
func Preview(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" {
				supplied := r.URL.Query().Get("preview")
				if supplied == "" {
					supplied = r.Header.Get("X-Preview-Secret")
				}
				if supplied != "" && subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) == 1 {
					r = r.WithContext(context.WithValue(r.Context(), previewContextKey, true))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsPreview reports whether the request was marked for draft preview.
func IsPreview(ctx context.Context) bool {
	flag, _ := ctx.Value(previewContextKey).(bool)
	return flag
}
