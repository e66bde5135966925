// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"net/http"

	"golang.org/x/sync/errgroup"

	"alhikma/internal/content"
	"alhikma/internal/middleware"
)

// homeData is the home template payload: the hero group first, then the
// fixed divisions and campus sections, then the remaining editorial blocks.
type homeData struct {
	Hero      []template.HTML
	Divisions template.HTML
	Campus    template.HTML
	Rest      []template.HTML
}

// Home composes the home page. First stage fetches the page document and
// the page-independent lists concurrently; the second stage runs the
// deduplicated event queries the block list implies.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		page     *content.Page
		settings *content.SiteSettings
		sections []content.SchoolSection
		popup    *content.Announcement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page, err = c.HomePage(gctx, loc)
		return err
	})
	g.Go(func() (err error) {
		settings, err = c.SiteSettings(gctx, loc)
		return err
	})
	g.Go(func() (err error) {
		sections, err = c.SchoolSections(gctx, loc)
		return err
	})
	if p.popupLocales[loc] {
		g.Go(func() (err error) {
			popup, err = c.UrgentAnnouncement(gctx, loc)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		p.serverError(w, r, err)
		return
	}

	if page == nil {
		p.NotFound(w, r)
		return
	}

	aux, err := fetchAux(ctx, c, loc, page.Blocks)
	if err != nil {
		p.serverError(w, r, err)
		return
	}

	hero, rest := heroGroup(page.Blocks)

	data := homeData{
		Hero: p.renderer.Sections(loc, hero, aux),
		Rest: p.renderer.Sections(loc, rest, aux),
	}
	if html, ok := p.renderer.DivisionsGrid(loc, sections); ok {
		data.Divisions = html
	}
	if html, ok := p.renderer.CampusCarousel(loc); ok {
		data.Campus = html
	}

	envelope := p.pageData(r, loc, page.Title, settings, data)
	envelope.MetaDescription = page.MetaDescription
	envelope.Popup = popup
	p.serve(w, r, loc, http.StatusOK, "home", envelope)
}
