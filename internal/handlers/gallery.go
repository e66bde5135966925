// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"alhikma/internal/content"
	"alhikma/internal/middleware"
	"alhikma/internal/render"
)

// Galleries composes the album index page.
func (p *Public) Galleries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		albums   []content.Album
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		albums, err = c.Albums(gctx, loc)
		return err
	})
	g.Go(func() (err error) {
		settings, err = c.SiteSettings(gctx, loc)
		return err
	})
	if err := g.Wait(); err != nil {
		p.serverError(w, r, err)
		return
	}

	data := struct{ Albums []content.Album }{albums}
	envelope := p.pageData(r, loc, render.Translate(loc, "gallery.title"), settings, data)
	p.serve(w, r, loc, http.StatusOK, "galleries", envelope)
}

// Album composes a single photo album page by slug.
func (p *Public) Album(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)
	slug := chi.URLParam(r, "slug")

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		album    *content.Album
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		album, err = c.AlbumBySlug(gctx, loc, slug)
		return err
	})
	g.Go(func() (err error) {
		settings, err = c.SiteSettings(gctx, loc)
		return err
	})
	if err := g.Wait(); err != nil {
		p.serverError(w, r, err)
		return
	}

	if album == nil {
		p.NotFound(w, r)
		return
	}

	data := struct{ Album *content.Album }{album}
	envelope := p.pageData(r, loc, album.Title, settings, data)
	p.serve(w, r, loc, http.StatusOK, "album", envelope)
}
