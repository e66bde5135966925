// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"alhikma/internal/content"
	"alhikma/internal/events"
	"alhikma/internal/locale"
	"alhikma/internal/middleware"
	"alhikma/internal/render"
)

// eventsData is the events-list template payload.
type eventsData struct {
	Filter   events.Filter
	Result   events.PageResult
	Sections []content.SchoolSection
	PrevURL  string
	NextURL  string
}

// Events composes the events list. The full list is fetched once; text,
// section, and date filters plus pagination run in-process, with the filter
// state round-tripped through the URL query string.
func (p *Public) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		all      []content.EventSummary
		sections []content.SchoolSection
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		all, err = c.Events(gctx, loc)
		return err
	})
	g.Go(func() (err error) {
		sections, err = c.SchoolSections(gctx, loc)
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

	filter := events.ParseValues(r.URL.Query())
	result := events.Apply(all, filter)

	data := eventsData{
		Filter:   filter,
		Result:   result,
		Sections: sections,
	}
	if result.Page > 1 {
		data.PrevURL = eventsURL(loc, filter.WithPage(result.Page-1))
	}
	if result.Page < result.TotalPages {
		data.NextURL = eventsURL(loc, filter.WithPage(result.Page+1))
	}

	envelope := p.pageData(r, loc, render.Translate(loc, "events.title"), settings, data)
	p.serve(w, r, loc, http.StatusOK, "events", envelope)
}

// eventsURL builds the canonical events-list URL for a filter state.
func eventsURL(loc locale.Locale, f events.Filter) string {
	base := "/" + loc.String() + "/events"
	if values := f.Values(); len(values) > 0 {
		base += "?" + values.Encode()
	}
	return base
}

// eventData is the event-detail template payload.
type eventData struct {
	Event *content.EventSummary
}

// Event composes a single event page by slug.
func (p *Public) Event(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := middleware.LocaleFromCtx(ctx)
	slug := chi.URLParam(r, "slug")

	if p.fromCache(w, r, loc) {
		return
	}

	c := p.client(r)

	var (
		event    *content.EventSummary
		settings *content.SiteSettings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		event, err = c.EventBySlug(gctx, loc, slug)
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

	if event == nil {
		p.NotFound(w, r)
		return
	}

	envelope := p.pageData(r, loc, event.Title, settings, eventData{Event: event})
	p.serve(w, r, loc, http.StatusOK, "event", envelope)
}
