// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// queries.go holds the query strings sent to the content platform and typed
// helpers around Client.Query. The query language is opaque to this code —
// handlers depend only on the result shapes in types.go.
package content

import (
	"context"

	"alhikma/internal/locale"
)

// Shared projections keep the result shapes aligned with types.go.
const (
	imageProjection = `{"url": asset->url, "alt": coalesce(alt, "")}`

	eventProjection = `{
		_id, title, "slug": slug.current, excerpt, description, location,
		"image": image` + imageProjection + `,
		startsAt,
		"sectionIds": sections[]._ref,
		"sectionSlugs": sections[]->slug.current
	}`
)

const (
	qPageBySlug = `*[_type == "page" && language == $lang && slug.current == $slug][0]{
		_id, title, "slug": slug.current, metaDescription, blocks
	}`

	qSitePageByPath = `*[_type == "sitePage" && language == $lang && path == $path][0]{
		_id, title, path, body
	}`

	qEvents = `*[_type == "event" && language == $lang] | order(startsAt desc) ` + eventProjection

	qEventBySlug = `*[_type == "event" && language == $lang && slug.current == $slug][0] ` + eventProjection

	qUpcomingEvents = `*[_type == "event" && language == $lang && startsAt >= now()
		&& ($sectionId == "" || $sectionId in sections[]._ref)]
		| order(startsAt asc) [0...$limit] ` + eventProjection

	qLatestEvents = `*[_type == "event" && language == $lang && startsAt < now()
		&& ($sectionId == "" || $sectionId in sections[]._ref)]
		| order(startsAt desc) [0...$limit] ` + eventProjection

	qNewsList = `*[_type == "newsPost" && language == $lang] | order(publishedAt desc) [0...$limit]{
		_id, title, "slug": slug.current, excerpt,
		"image": image` + imageProjection + `, publishedAt
	}`

	qNewsBySlug = `*[_type == "newsPost" && language == $lang && slug.current == $slug][0]{
		_id, title, "slug": slug.current, excerpt, body,
		"image": image` + imageProjection + `, publishedAt
	}`

	qAlbums = `*[_type == "album" && language == $lang] | order(_createdAt desc){
		_id, title, "slug": slug.current,
		"cover": cover` + imageProjection + `,
		"sectionSlugs": sections[]->slug.current
	}`

	qAlbumBySlug = `*[_type == "album" && language == $lang && slug.current == $slug][0]{
		_id, title, "slug": slug.current,
		"cover": cover` + imageProjection + `,
		"images": images[]` + imageProjection + `,
		"sectionSlugs": sections[]->slug.current
	}`

	qAnnouncements = `*[_type == "announcement" && language == $lang]
		| order(publishedAt desc) [0...$limit]{
		_id, title, excerpt, body, "image": image` + imageProjection + `,
		publishedAt, urgent, "slug": slug.current, "sectionIds": sections[]._ref
	}`

	qUrgentAnnouncement = `*[_type == "announcement" && language == $lang && urgent == true]
		| order(publishedAt desc) [0]{
		_id, title, excerpt, body, "image": image` + imageProjection + `,
		publishedAt, urgent, "slug": slug.current
	}`

	qSchoolSections = `*[_type == "schoolSection"] | order(order asc){
		_id, "title": title[$lang], "slug": slug.current
	}`

	qSiteSettings = `*[_type == "siteSettings" && language == $lang][0]{
		schoolName, tagline, phone, email, address,
		facebookUrl, instagramUrl, youtubeUrl
	}`
)

// PageBySlug fetches a structured page document. Returns nil when absent.
func (c *Client) PageBySlug(ctx context.Context, loc locale.Locale, slug string) (*Page, error) {
	var page *Page
	err := c.Query(ctx, qPageBySlug, map[string]any{"lang": loc.String(), "slug": slug}, &page)
	return page, err
}

// HomePage fetches the home page document for a locale.
func (c *Client) HomePage(ctx context.Context, loc locale.Locale) (*Page, error) {
	return c.PageBySlug(ctx, loc, "home")
}

// SitePageByPath fetches a legacy flat page by its full joined path.
func (c *Client) SitePageByPath(ctx context.Context, loc locale.Locale, path string) (*SitePage, error) {
	var page *SitePage
	err := c.Query(ctx, qSitePageByPath, map[string]any{"lang": loc.String(), "path": path}, &page)
	return page, err
}

// Events fetches every event for the events list page, newest first.
// Filtering and pagination happen in-process on this list.
func (c *Client) Events(ctx context.Context, loc locale.Locale) ([]EventSummary, error) {
	var events []EventSummary
	err := c.Query(ctx, qEvents, map[string]any{"lang": loc.String()}, &events)
	return events, err
}

// EventBySlug fetches one event. Returns nil when absent.
func (c *Client) EventBySlug(ctx context.Context, loc locale.Locale, slug string) (*EventSummary, error) {
	var event *EventSummary
	err := c.Query(ctx, qEventBySlug, map[string]any{"lang": loc.String(), "slug": slug}, &event)
	return event, err
}

// UpcomingEvents fetches events starting after now, soonest first. An empty
// sectionID means the global list.
func (c *Client) UpcomingEvents(ctx context.Context, loc locale.Locale, sectionID string, limit int) ([]EventSummary, error) {
	var events []EventSummary
	err := c.Query(ctx, qUpcomingEvents, map[string]any{
		"lang": loc.String(), "sectionId": sectionID, "limit": limit,
	}, &events)
	return events, err
}

// LatestEvents fetches already-held events, most recent first. An empty
// sectionID means the global list.
func (c *Client) LatestEvents(ctx context.Context, loc locale.Locale, sectionID string, limit int) ([]EventSummary, error) {
	var events []EventSummary
	err := c.Query(ctx, qLatestEvents, map[string]any{
		"lang": loc.String(), "sectionId": sectionID, "limit": limit,
	}, &events)
	return events, err
}

// NewsList fetches the most recent news posts.
func (c *Client) NewsList(ctx context.Context, loc locale.Locale, limit int) ([]NewsPost, error) {
	var posts []NewsPost
	err := c.Query(ctx, qNewsList, map[string]any{"lang": loc.String(), "limit": limit}, &posts)
	return posts, err
}

// NewsBySlug fetches one news post. Returns nil when absent.
func (c *Client) NewsBySlug(ctx context.Context, loc locale.Locale, slug string) (*NewsPost, error) {
	var post *NewsPost
	err := c.Query(ctx, qNewsBySlug, map[string]any{"lang": loc.String(), "slug": slug}, &post)
	return post, err
}

// Albums fetches album summaries for the galleries page.
func (c *Client) Albums(ctx context.Context, loc locale.Locale) ([]Album, error) {
	var albums []Album
	err := c.Query(ctx, qAlbums, map[string]any{"lang": loc.String()}, &albums)
	return albums, err
}

// AlbumBySlug fetches one album with its images. Returns nil when absent.
func (c *Client) AlbumBySlug(ctx context.Context, loc locale.Locale, slug string) (*Album, error) {
	var album *Album
	err := c.Query(ctx, qAlbumBySlug, map[string]any{"lang": loc.String(), "slug": slug}, &album)
	return album, err
}

// Announcements fetches the most recent announcements.
func (c *Client) Announcements(ctx context.Context, loc locale.Locale, limit int) ([]Announcement, error) {
	var items []Announcement
	err := c.Query(ctx, qAnnouncements, map[string]any{"lang": loc.String(), "limit": limit}, &items)
	return items, err
}

// UrgentAnnouncement fetches the newest urgent announcement, or nil.
func (c *Client) UrgentAnnouncement(ctx context.Context, loc locale.Locale) (*Announcement, error) {
	var item *Announcement
	err := c.Query(ctx, qUrgentAnnouncement, map[string]any{"lang": loc.String()}, &item)
	return item, err
}

// SchoolSections fetches the section reference entities in display order.
func (c *Client) SchoolSections(ctx context.Context, loc locale.Locale) ([]SchoolSection, error) {
	var sections []SchoolSection
	err := c.Query(ctx, qSchoolSections, map[string]any{"lang": loc.String()}, &sections)
	return sections, err
}

// SiteSettings fetches the site-wide settings document, or nil.
func (c *Client) SiteSettings(ctx context.Context, loc locale.Locale) (*SiteSettings, error) {
	var settings *SiteSettings
	err := c.Query(ctx, qSiteSettings, map[string]any{"lang": loc.String()}, &settings)
	return settings, err
}
