// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// blocks.go models the content-block union. Editors assemble pages from a
// fixed set of block types, discriminated by the _type field. The set is
// open on the editorial side: a block type added in the studio before code
// support exists decodes to UnknownBlock and renders as nothing.
package content

import (
	"encoding/json"
	"sort"
	"strings"
)

// DefaultFeedLimit is how many items a feed block shows when the editor
// leaves the limit empty.
const DefaultFeedLimit = 6

// Block is one unit of page content. The concrete types below form a closed
// union so the renderer's type switch stays exhaustive; UnknownBlock is the
// explicit catch-all for editorial types this code does not know yet.
type Block interface {
	blockType() string
}

// VideoHero is the full-bleed hero with a background video and two optional
// calls to action.
type VideoHero struct {
	TitleLine1   string `json:"titleLine1"`
	TitleLine2   string `json:"titleLine2"`
	Subtitle     string `json:"subtitle"`
	VideoURL     string `json:"videoUrl"`
	PosterURL    string `json:"posterUrl"`
	PrimaryCTA   *Link  `json:"primaryCta"`
	SecondaryCTA *Link  `json:"secondaryCta"`
}

// ArrowDivider is a purely decorative divider pointing up or down.
type ArrowDivider struct {
	Direction string `json:"-"`
}

// Testimonial is one quote inside a ParentsTestimonials block.
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Photo  *Image `json:"photo"`
}

// ParentsTestimonials is a carousel of parent quotes.
type ParentsTestimonials struct {
	Heading string        `json:"heading"`
	Items   []Testimonial `json:"items"`
}

// Announcements shows recent announcements, optionally scoped to one school section.
type Announcements struct {
	Heading   string `json:"heading"`
	SectionID string `json:"sectionId"`
	Limit     *int   `json:"limit"`
}

// UpcomingEvents shows events starting after now, optionally section-scoped.
type UpcomingEvents struct {
	Heading   string `json:"heading"`
	SectionID string `json:"sectionId"`
	Limit     *int   `json:"limit"`
}

// LatestEvents shows the most recently held events, optionally section-scoped.
type LatestEvents struct {
	Heading   string `json:"heading"`
	SectionID string `json:"sectionId"`
	Limit     *int   `json:"limit"`
}

// UnknownBlock carries the raw payload of a block type without code support.
type UnknownBlock struct {
	Type string
	Raw  json.RawMessage
}

func (VideoHero) blockType() string           { return "videoHero" }
func (ArrowDivider) blockType() string        { return "arrowDivider" }
func (ParentsTestimonials) blockType() string { return "parentsTestimonials" }
func (Announcements) blockType() string       { return "announcements" }
func (UpcomingEvents) blockType() string      { return "upcomingEvents" }
func (LatestEvents) blockType() string        { return "latestEvents" }
func (b UnknownBlock) blockType() string      { return b.Type }

// FeedLimit normalizes an optional editor-configured item limit: nil means
// the default, negatives clamp to zero.
func FeedLimit(limit *int) int {
	if limit == nil {
		return DefaultFeedLimit
	}
	if *limit < 0 {
		return 0
	}
	return *limit
}

// BlockList decodes a heterogeneous block array. A malformed element or an
// unrecognized _type never fails the page — it becomes an UnknownBlock.
type BlockList []Block

func (bl *BlockList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(BlockList, 0, len(raws))
	for _, raw := range raws {
		out = append(out, decodeBlock(raw))
	}
	*bl = out
	return nil
}

// decodeBlock turns one raw block into its concrete variant.
func decodeBlock(raw json.RawMessage) Block {
	var head struct {
		Type string `json:"_type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return UnknownBlock{Raw: raw}
	}

	switch head.Type {
	case "videoHero":
		var b VideoHero
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "arrowDivider":
		var b ArrowDivider
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "parentsTestimonials":
		var b ParentsTestimonials
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "announcements":
		var b Announcements
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "upcomingEvents":
		var b UpcomingEvents
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	case "latestEvents":
		var b LatestEvents
		if err := json.Unmarshal(raw, &b); err == nil {
			return b
		}
	}
	return UnknownBlock{Type: head.Type, Raw: raw}
}

// UnmarshalJSON reads the divider direction permissively. Legacy documents
// stored it as a string, an array of strings, or a locale-keyed object;
// anything unrecognized defaults to "down".
func (a *ArrowDivider) UnmarshalJSON(data []byte) error {
	var payload struct {
		Direction json.RawMessage `json:"direction"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		a.Direction = "down"
		return nil
	}
	a.Direction = decodeDirection(payload.Direction)
	return nil
}

func decodeDirection(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "down"
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return normalizeDirection(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return normalizeDirection(list[0])
	}

	var byLocale map[string]string
	if err := json.Unmarshal(raw, &byLocale); err == nil {
		keys := make([]string, 0, len(byLocale))
		for k := range byLocale {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if byLocale[k] != "" {
				return normalizeDirection(byLocale[k])
			}
		}
	}

	return "down"
}

func normalizeDirection(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return "up"
	case "down":
		return "down"
	}
	return "down"
}
