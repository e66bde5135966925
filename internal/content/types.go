// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content is the Go side of the hosted content platform. It holds
// the document model returned by the query API and an HTTP client that runs
// parameterized queries against it. Documents are request-scoped value
// objects — the rendering pipeline reads them and throws them away.
package content

import "time"

// Image is a resolved image reference: a CDN URL plus alt text.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// SchoolSection is an organizational grouping (kindergarten, primary, ...)
// used as a key for scoping events and galleries. No behavior, identity by ID.
type SchoolSection struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// EventSummary is a flat event record as returned by the query layer.
type EventSummary struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Excerpt      string   `json:"excerpt"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Image        *Image   `json:"image"`
	StartsAt     string   `json:"startsAt"`
	SectionIDs   []string `json:"sectionIds"`
	SectionSlugs []string `json:"sectionSlugs"`
}

// eventDateLayouts are the date shapes editors produce: plain dates from the
// date picker and full timestamps from imports.
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// Date parses the event's start date. ok is false when the field is missing
// or not in a recognized layout; callers treat such events as undated.
func (e EventSummary) Date() (t time.Time, ok bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, e.StartsAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InSection reports whether the event belongs to the section with the given slug.
func (e EventSummary) InSection(slug string) bool {
	for _, s := range e.SectionSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Announcement is a short notice shown in feeds and, when urgent, as a popup.
type Announcement struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	Image       *Image   `json:"image"`
	PublishedAt string   `json:"publishedAt"`
	Urgent      bool     `json:"urgent"`
	Slug        string   `json:"slug"`
	SectionIDs  []string `json:"sectionIds"`
}

// NewsPost is a news article. Body is Markdown authored in the studio.
type NewsPost struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	Image       *Image `json:"image"`
	PublishedAt string `json:"publishedAt"`
}

// Album is a photo album; the galleries page lists albums, the album page
// shows its images.
type Album struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Cover        *Image   `json:"cover"`
	Images       []Image  `json:"images"`
	SectionSlugs []string `json:"sectionSlugs"`
}

// SiteSettings holds site-wide chrome content edited in the studio.
type SiteSettings struct {
	SchoolName   string `json:"schoolName"`
	Tagline      string `json:"tagline"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebookUrl"`
	InstagramURL string `json:"instagramUrl"`
	YoutubeURL   string `json:"youtubeUrl"`
}

// DocRef is a reference to another content document, carried inside links.
type DocRef struct {
	Type string `json:"_type"`
	Slug string `json:"slug"`
}

// Link is the raw union of link representations editors can produce:
// an external URL, a free-text internal path, a symbolic route key, or a
// reference to another document. links.Resolve collapses it to one target.
type Link struct {
	Kind         string  `json:"kind"` // "internal" or "external"
	Label        string  `json:"label"`
	URL          string  `json:"url"`
	OpenInNewTab *bool   `json:"openInNewTab"`
	RouteKey     string  `json:"route"`
	InternalPath string  `json:"path"`
	Ref          *DocRef `json:"ref"`
}

// Page is a structured page document: a title plus an ordered list of
// content blocks assembled by editors.
type Page struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	MetaDescription string    `json:"metaDescription"`
	Blocks          BlockList `json:"blocks"`
}

// SitePage is the legacy flat page type, looked up by its full path when no
// structured page matches a slug. Body is Markdown.
type SitePage struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Body  string `json:"body"`
}
