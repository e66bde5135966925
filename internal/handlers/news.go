// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"alhikma/internal/content"
	"alhikma/internal/markdown"
	"alhikma/internal/middleware"
	"alhikma/internal/render"
)

// newsListLimit caps the news index; older posts stay reachable by slug.
const newsListLimit = 24

// News composes the news index page.
func (p *Public) News(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		posts    []content.NewsPost
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		posts, err = c.NewsList(gctx, loc, newsListLimit)
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

	data := struct{ Posts []content.NewsPost }{posts}
	envelope := p.pageData(r, loc, render.Translate(loc, "news.title"), settings, data)
	p.serve(w, r, loc, http.StatusOK, "news", envelope)
}

// newsPostData is the news-detail template payload.
type newsPostData struct {
	Post     *content.NewsPost
	BodyHTML template.HTML
}

// NewsPost composes a single news article. The Markdown body converts to
// HTML here; a conversion failure degrades to an empty body, not an error.
func (p *Public) NewsPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)
	slug := chi.URLParam(r, "slug")

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		post     *content.NewsPost
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		post, err = c.NewsBySlug(gctx, loc, slug)
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

	if post == nil {
		p.NotFound(w, r)
		return
	}

	data := newsPostData{Post: post}
	if body, err := markdown.ToHTML(post.Body); err == nil {
		data.BodyHTML = template.HTML(body)
	}

	envelope := p.pageData(r, loc, post.Title, settings, data)
	p.serve(w, r, loc, http.StatusOK, "news_post", envelope)
}
