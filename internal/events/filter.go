// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package events implements filtering and pagination for the events list.
// The full list is fetched once per request; filter state lives in the URL
// query string so views are shareable and the back button just works.
package events

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"alhikma/internal/content"
)

// PageSize is the fixed number of events per page.
const PageSize = 9

// dateLayout is the wire format of the from/to query parameters.
const dateLayout = "2006-01-02"

// Filter is the events-list filter state. The zero value (with Page 1)
// matches everything.
type Filter struct {
	Query   string // free-text, case-insensitive
	Section string // school-section slug
	From    string // inclusive lower date bound, yyyy-mm-dd
	To      string // inclusive upper date bound, yyyy-mm-dd
	Page    int
}

// ParseValues reads filter state from a URL query string. Absent or
// malformed values fall back to defaults; the page floor is 1.
func ParseValues(values url.Values) Filter {
	f := Filter{
		Query:   strings.TrimSpace(values.Get("q")),
		Section: values.Get("section"),
		From:    values.Get("from"),
		To:      values.Get("to"),
		Page:    1,
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		f.Page = page
	}
	return f
}

// Values encodes the filter back into query parameters, omitting defaults
// so canonical URLs stay clean (no empty-string params, no page=1).
func (f Filter) Values() url.Values {
	values := url.Values{}
	if f.Query != "" {
		values.Set("q", f.Query)
	}
	if f.Section != "" {
		values.Set("section", f.Section)
	}
	if f.From != "" {
		values.Set("from", f.From)
	}
	if f.To != "" {
		values.Set("to", f.To)
	}
	if f.Page > 1 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	return values
}

// WithPage returns a copy of the filter pointing at another page. Used to
// build pagination links without disturbing the rest of the state.
func (f Filter) WithPage(page int) Filter {
	f.Page = page
	return f
}

// Matches reports whether an event passes every active filter (AND semantics).
func (f Filter) Matches(event content.EventSummary) bool {
	if f.Query != "" {
		haystack := strings.ToLower(event.Title + " " + event.Description + " " + event.Location)
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}

	if f.Section != "" && !event.InSection(f.Section) {
		return false
	}

	return f.matchesDates(event)
}

// matchesDates applies the inclusive [from 00:00, to 23:59] window. Events
// whose date is missing or unparsable always pass; an unparsable bound is
// treated as absent.
func (f Filter) matchesDates(event content.EventSummary) bool {
	if f.From == "" && f.To == "" {
		return true
	}
	date, ok := event.Date()
	if !ok {
		return true
	}

	if from, err := time.Parse(dateLayout, f.From); f.From != "" && err == nil {
		if date.Before(from) {
			return false
		}
	}
	if to, err := time.Parse(dateLayout, f.To); f.To != "" && err == nil {
		endOfDay := to.Add(24*time.Hour - time.Second)
		if date.After(endOfDay) {
			return false
		}
	}
	return true
}

// PageResult is one page of filtered events plus pagination facts.
type PageResult struct {
	Items      []content.EventSummary
	Page       int // clamped current page, 1-based
	TotalPages int // 0 when nothing matches
	Total      int // matching events across all pages
}

// Apply filters the full event list and slices out the requested page.
// The page number clamps to [1, ceil(matches/PageSize)].
func Apply(all []content.EventSummary, f Filter) PageResult {
	var matched []content.EventSummary
	for _, event := range all {
		if f.Matches(event) {
			matched = append(matched, event)
		}
	}

	totalPages := (len(matched) + PageSize - 1) / PageSize

	page := f.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return PageResult{
		Items:      matched[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(matched),
	}
}
