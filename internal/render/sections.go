// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sections.go is the content-block dispatcher: it walks a page's ordered
// block list and renders each recognized variant through its fragment
// template. Unrecognized block types are skipped silently — editors may add
// new types in the studio before this code learns about them, and a page
// must never break because of one. Malformed optional fields degrade to
// omitted markup, not errors.
package render

import (
	"html/template"
	"log/slog"
	"strings"

	"alhikma/internal/content"
	"alhikma/internal/links"
	"alhikma/internal/locale"
)

// Aux carries the pre-fetched data the feed blocks render from. Event lists
// are keyed globally and per school-section id; a section bucket that was
// never populated reads as an empty list.
type Aux struct {
	Announcements   []content.Announcement
	Upcoming        []content.EventSummary
	Latest          []content.EventSummary
	SectionUpcoming map[string][]content.EventSummary
	SectionLatest   map[string][]content.EventSummary
}

// UpcomingFor selects the upcoming-events source list for a block.
func (a Aux) UpcomingFor(sectionID string) []content.EventSummary {
	if sectionID == "" {
		return a.Upcoming
	}
	return a.SectionUpcoming[sectionID]
}

// LatestFor selects the latest-events source list for a block.
func (a Aux) LatestFor(sectionID string) []content.EventSummary {
	if sectionID == "" {
		return a.Latest
	}
	return a.SectionLatest[sectionID]
}

// HeroWord is one word of the hero's second title line. The literal word
// "and" renders in the accent style — a design quirk of the hero artwork
// that the templates reproduce exactly.
type HeroWord struct {
	Text   string
	Accent bool
}

// HeroWords splits a title line into words, marking accented ones.
func HeroWords(line string) []HeroWord {
	fields := strings.Fields(line)
	words := make([]HeroWord, 0, len(fields))
	for _, f := range fields {
		words = append(words, HeroWord{Text: f, Accent: strings.EqualFold(f, "and")})
	}
	return words
}

// heroData feeds the video-hero fragment.
type heroData struct {
	Locale         locale.Locale
	Block          content.VideoHero
	TitleWords     []HeroWord
	Primary        *links.Target
	PrimaryLabel   string
	Secondary      *links.Target
	SecondaryLabel string
}

// dividerData feeds the arrow-divider fragment.
type dividerData struct {
	Direction string
}

// eventFeedData feeds the upcoming/latest event fragments.
type eventFeedData struct {
	Locale   locale.Locale
	Heading  string
	Events   []content.EventSummary
	Upcoming bool
}

// announcementFeedData feeds the announcements fragment.
type announcementFeedData struct {
	Locale        locale.Locale
	Heading       string
	Announcements []content.Announcement
}

// testimonialsData feeds the parents-testimonials fragment.
type testimonialsData struct {
	Locale  locale.Locale
	Heading string
	Items   []content.Testimonial
}

// Sections renders an ordered block list into HTML fragments. The switch is
// exhaustive over the known variants; UnknownBlock is the deliberate
// forward-compatibility escape hatch.
func (r *Renderer) Sections(loc locale.Locale, blocks content.BlockList, aux Aux) []template.HTML {
	out := make([]template.HTML, 0, len(blocks))
	for _, block := range blocks {
		if html, ok := r.Section(loc, block, aux); ok {
			out = append(out, html)
		}
	}
	return out
}

// Section renders a single block. ok is false when the block produced no
// output, either because its type is unknown or its fragment failed.
func (r *Renderer) Section(loc locale.Locale, block content.Block, aux Aux) (template.HTML, bool) {
	switch b := block.(type) {
	case content.VideoHero:
		return r.fragment("video_hero", heroData{
			Locale:         loc,
			Block:          b,
			TitleWords:     HeroWords(b.TitleLine2),
			Primary:        links.Resolve(loc, b.PrimaryCTA, nil),
			PrimaryLabel:   ctaLabel(b.PrimaryCTA),
			Secondary:      links.Resolve(loc, b.SecondaryCTA, nil),
			SecondaryLabel: ctaLabel(b.SecondaryCTA),
		})

	case content.ArrowDivider:
		return r.fragment("arrow_divider", dividerData{Direction: b.Direction})

	case content.ParentsTestimonials:
		if len(b.Items) == 0 {
			return "", false
		}
		return r.fragment("testimonials", testimonialsData{
			Locale: loc, Heading: b.Heading, Items: b.Items,
		})

	case content.Announcements:
		return r.fragment("announcement_feed", announcementFeedData{
			Locale:        loc,
			Heading:       b.Heading,
			Announcements: truncate(scopedAnnouncements(aux, b.SectionID), content.FeedLimit(b.Limit)),
		})

	case content.UpcomingEvents:
		return r.fragment("event_feed", eventFeedData{
			Locale:   loc,
			Heading:  b.Heading,
			Events:   truncate(aux.UpcomingFor(b.SectionID), content.FeedLimit(b.Limit)),
			Upcoming: true,
		})

	case content.LatestEvents:
		return r.fragment("event_feed", eventFeedData{
			Locale:  loc,
			Heading: b.Heading,
			Events:  truncate(aux.LatestFor(b.SectionID), content.FeedLimit(b.Limit)),
		})

	case content.UnknownBlock:
		slog.Debug("skipping unknown content block", "type", b.Type)
		return "", false
	}

	return "", false
}

// DivisionsGrid renders the fixed home section listing the school sections.
func (r *Renderer) DivisionsGrid(loc locale.Locale, sections []content.SchoolSection) (template.HTML, bool) {
	if len(sections) == 0 {
		return "", false
	}
	return r.fragment("divisions_grid", struct {
		Locale   locale.Locale
		Sections []content.SchoolSection
	}{loc, sections})
}

// CampusCarousel renders the fixed home campus-photos section.
func (r *Renderer) CampusCarousel(loc locale.Locale) (template.HTML, bool) {
	return r.fragment("campus_carousel", struct{ Locale locale.Locale }{loc})
}

// fragment executes one fragment template. A failure is logged and degrades
// to no output — a broken block never takes the page down.
func (r *Renderer) fragment(name string, data any) (template.HTML, bool) {
	var buf strings.Builder
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("render fragment failed", "fragment", name, "error", err)
		return "", false
	}
	return template.HTML(buf.String()), true
}

// ctaLabel returns a call-to-action's display text, empty when the link is
// absent. Templates omit the button entirely for an empty label.
func ctaLabel(link *content.Link) string {
	if link == nil {
		return ""
	}
	return link.Label
}

// scopedAnnouncements selects the announcements source; announcements are
// only fetched globally, so a section-scoped block filters in-process.
func scopedAnnouncements(aux Aux, sectionID string) []content.Announcement {
	if sectionID == "" {
		return aux.Announcements
	}
	var scoped []content.Announcement
	for _, item := range aux.Announcements {
		for _, id := range item.SectionIDs {
			if id == sectionID {
				scoped = append(scoped, item)
				break
			}
		}
	}
	return scoped
}

// truncate clamps a list to at most n items.
func truncate[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[:n]
}
