// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"alhikma/internal/content"
	"alhikma/internal/locale"
	"alhikma/internal/markdown"
	"alhikma/internal/middleware"
)

// contentPageData is the generic page template payload. Structured pages
// fill Sections; legacy site pages fill BodyHTML.
type contentPageData struct {
	ShowTitle bool
	Sections  []template.HTML
	BodyHTML  template.HTML
}

// Page is the catch-all content route. A one-segment path resolves first
// against a structured page document by slug, then falls back to the legacy
// site-page lookup keyed by the full joined path; deeper paths only exist
// in the legacy shape.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)
	rest := strings.Trim(chi.URLParam(r, "*"), "/")

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	settings, err := c.SiteSettings(ctx, loc)
	if err != nil {
		p.serverError(w, r, err)
		return
	}

	if !strings.Contains(rest, "/") {
		page, err := c.PageBySlug(ctx, loc, rest)
		if err != nil {
			p.serverError(w, r, err)
			return
		}
		if page != nil {
			p.servePage(w, r, loc, settings, page)
			return
		}
	}

	site, err := c.SitePageByPath(ctx, loc, rest)
	if err != nil {
		p.serverError(w, r, err)
		return
	}
	if site == nil {
		p.NotFound(w, r)
		return
	}

	data := contentPageData{ShowTitle: true}
	if body, err := markdown.ToHTML(site.Body); err == nil {
		data.BodyHTML = template.HTML(body)
	}

	envelope := p.pageData(r, loc, site.Title, settings, data)
	p.serve(w, r, loc, http.StatusOK, "page", envelope)
}

// servePage renders a structured page: fetch the auxiliary data its blocks
// need, then dispatch the blocks in order. The page title shows unless the
// page opens with its own hero.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, loc locale.Locale, settings *content.SiteSettings, page *content.Page) {
	aux, err := fetchAux(r.Context(), p.client(r), loc, page.Blocks)
	if err != nil {
		p.serverError(w, r, err)
		return
	}

	showTitle := true
	if len(page.Blocks) > 0 {
		if _, ok := page.Blocks[0].(content.VideoHero); ok {
			showTitle = false
		}
	}

	data := contentPageData{
		ShowTitle: showTitle,
		Sections:  p.renderer.Sections(loc, page.Blocks, aux),
	}

	envelope := p.pageData(r, loc, page.Title, settings, data)
	envelope.MetaDescription = page.MetaDescription
	p.serve(w, r, loc, http.StatusOK, "page", envelope)
}
