// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"alhikma/internal/locale"
)

type contextKey string

const localeContextKey contextKey = "locale"

// RedirectLocale applies the locale redirect heuristic before routing: when
// the first path segment looks like a locale (exactly two letters) but is not
// a supported one, the visitor most likely followed a link with a language
// the site dropped or never had. Strip it and redirect to the default locale,
// preserving the remaining path and query string. Everything else passes
// through untouched — the /{locale} subtree enforces the supported set.
func RedirectLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/")
		segment, rest := trimmed, ""
		if idx := strings.IndexByte(trimmed, '/'); idx != -1 {
			segment, rest = trimmed[:idx], trimmed[idx:]
		}

		if len(segment) == 2 {
			if _, ok := locale.Parse(segment); !ok {
				target := "/" + locale.Default.String() + rest
				if q := r.URL.RawQuery; q != "" {
					target += "?" + q
				}
				http.Redirect(w, r, target, http.StatusFound)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// ResolveLocale validates the chi {locale} URL parameter and stores the
// parsed locale in the request context. Unsupported values get the given
// not-found handler — by this point the redirect heuristic has already had
// its chance.
func ResolveLocale(notFound http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, ok := locale.Parse(chi.URLParam(r, "locale"))
			if !ok {
				notFound(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
		})
	}
}

// WithLocale returns a context carrying the resolved locale.
func WithLocale(ctx context.Context, loc locale.Locale) context.Context {
	return context.WithValue(ctx, localeContextKey, loc)
}

// LocaleFromCtx returns the resolved locale, or the default when the request
// never went through ResolveLocale (health checks, tests).
func LocaleFromCtx(ctx context.Context) locale.Locale {
	if loc, ok := ctx.Value(localeContextKey).(locale.Locale); ok {
		return loc
	}
	return locale.Default
}
