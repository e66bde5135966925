// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the page composers for the public site. Each
// handler resolves the request locale, fires the content queries it needs
// (independent queries run concurrently), applies light post-processing,
// and hands the results to the renderer. Entities are request-scoped — no
// state survives the response except the full-page cache.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"alhikma/internal/cache"
	"alhikma/internal/content"
	"alhikma/internal/locale"
	"alhikma/internal/middleware"
	"alhikma/internal/render"
)

// Public groups the public-site handlers and their dependencies. It holds
// both content clients; the preview flag on the request decides which one a
// composer uses, so no ambient mode state exists anywhere.
type Public struct {
	published    *content.Client
	preview      *content.Client // nil when no read token is configured
	renderer     *render.Renderer
	pageCache    *cache.PageCache
	popupLocales map[locale.Locale]bool
}

// NewPublic creates the public handler group. preview may be nil;
// popupLocales names the locales that show the urgent-announcement popup.
func NewPublic(published, preview *content.Client, renderer *render.Renderer, pageCache *cache.PageCache, popupLocales []string) *Public {
	allowed := make(map[locale.Locale]bool, len(popupLocales))
	for _, code := range popupLocales {
		if loc, ok := locale.Parse(strings.TrimSpace(code)); ok {
			allowed[loc] = true
		}
	}
	return &Public{
		published:    published,
		preview:      preview,
		renderer:     renderer,
		pageCache:    pageCache,
		popupLocales: allowed,
	}
}

// client selects the content client for this request: the preview client
// for authorized preview requests, the published one otherwise.
func (p *Public) client(r *http.Request) *content.Client {
	if middleware.IsPreview(r.Context()) && p.preview != nil {
		return p.preview
	}
	return p.published
}

// restOfPath returns the request path with the locale prefix removed
// ("" for the locale root). Used for cache keys and the locale switcher.
func restOfPath(r *http.Request, loc locale.Locale) string {
	rest := strings.TrimPrefix(r.URL.Path, "/"+loc.String())
	if rest == "/" {
		rest = ""
	}
	return rest
}

// pageData builds the common template envelope for a request.
func (p *Public) pageData(r *http.Request, loc locale.Locale, title string, settings *content.SiteSettings, data any) *render.PageData {
	return &render.PageData{
		Locale:     loc,
		Title:      title,
		Settings:   settings,
		Alternates: render.Alternates(loc, restOfPath(r, loc)),
		Data:       data,
	}
}

// fromCache serves a cached copy of this page when one exists. Preview
// requests always miss — drafts must never be cached or served from cache.
func (p *Public) fromCache(w http.ResponseWriter, r *http.Request, loc locale.Locale) bool {
	if middleware.IsPreview(r.Context()) {
		return false
	}
	key := cache.Key(loc, r.URL.Path, r.URL.RawQuery)
	html, ok := p.pageCache.Get(r.Context(), key)
	if !ok {
		return false
	}
	render.WriteHTML(w, http.StatusOK, html)
	return true
}

// serve renders a page template, stores successful published renders in
// the page cache, and writes the response.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, loc locale.Locale, status int, template string, data *render.PageData) {
	html, err := p.renderer.Render(template, data)
	if err != nil {
		p.serverError(w, r, err)
		return
	}
	if status == http.StatusOK && !middleware.IsPreview(r.Context()) {
		p.pageCache.Set(r.Context(), cache.Key(loc, r.URL.Path, r.URL.RawQuery), html)
	}
	render.WriteHTML(w, status, html)
}

// serverError logs a failed composition and returns a generic 500. Query
// failures are all-or-nothing: no partial page is ever rendered.
func (p *Public) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("page composition failed",
		"error", err,
		"path", r.URL.Path,
		"locale", middleware.LocaleFromCtx(r.Context()).String(),
	)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// NotFound renders the localized not-found page. It is also the target the
// locale middleware uses for unsupported locale values.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	loc := middleware.LocaleFromCtx(r.Context())
	data := p.pageData(r, loc, render.Translate(loc, "notfound.title"), nil, struct{}{})
	html, err := p.renderer.Render("notfound", data)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	render.WriteHTML(w, http.StatusNotFound, html)
}
