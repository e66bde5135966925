// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package links collapses the union of link representations editors can
// produce (external URL, free-text internal path, document reference,
// symbolic route key, legacy href) into a single renderable target.
// Resolution is pure: no I/O, deterministic, and it never panics — inputs
// with no renderable target resolve to nil.
package links

import (
	"strings"

	"alhikma/internal/content"
	"alhikma/internal/locale"
)

// Target is a resolved link ready for templates: either an internal route
// (locale-prefixed path) or an external anchor with a new-tab policy.
type Target struct {
	Href     string
	External bool
	NewTab   bool
}

// routePaths maps symbolic route keys to path segments under the locale root.
var routePaths = map[string]string{
	"home":       "",
	"about":      "about",
	"admissions": "admissions",
	"events":     "events",
	"news":       "news",
	"gallery":    "gallery",
	"contact":    "contact",
}

// refPrefixes maps referenced document types to their route prefix.
var refPrefixes = map[string]string{
	"page":     "",
	"event":    "events/",
	"newsPost": "news/",
	"album":    "gallery/",
}

// rule inspects the inputs and either claims them (handled=true, target may
// still be nil) or passes to the next rule. Keeping the fallback chain as a
// flat rule list keeps each source independently testable.
type rule func(loc locale.Locale, link *content.Link, legacyHref *string) (target *Target, handled bool)

var rules = []rule{externalRule, internalRule, legacyRule}

// Resolve returns the renderable target for a link, or nil when none exists.
// legacyHref carries the old free-text href field; nil means not supplied.
func Resolve(loc locale.Locale, link *content.Link, legacyHref *string) *Target {
	for _, r := range rules {
		if target, handled := r(loc, link, legacyHref); handled {
			return target
		}
	}
	return nil
}

// externalRule handles explicit external links. A blank URL is unrenderable.
// New-tab defaults to true unless the editor opted out.
func externalRule(_ locale.Locale, link *content.Link, _ *string) (*Target, bool) {
	if link == nil || link.Kind != "external" {
		return nil, false
	}
	url := strings.TrimSpace(link.URL)
	if url == "" {
		return nil, true
	}
	newTab := true
	if link.OpenInNewTab != nil {
		newTab = *link.OpenInNewTab
	}
	return &Target{Href: url, External: true, NewTab: newTab}, true
}

// internalRule handles explicit internal links. An explicit free-text path
// wins over a document reference, which wins over a symbolic route key.
func internalRule(loc locale.Locale, link *content.Link, _ *string) (*Target, bool) {
	if link == nil || link.Kind != "internal" {
		return nil, false
	}

	if path := strings.TrimSpace(link.InternalPath); path != "" {
		return internalTarget(loc, path), true
	}

	if link.Ref != nil && link.Ref.Slug != "" {
		if prefix, ok := refPrefixes[link.Ref.Type]; ok {
			return internalTarget(loc, prefix+link.Ref.Slug), true
		}
	}

	if segment, ok := routePaths[link.RouteKey]; ok {
		return internalTarget(loc, segment), true
	}
	return nil, true
}

// legacyRule handles the old free-text href field: empty means home, an
// absolute URL is external (new tab), anything else is a relative internal path.
func legacyRule(loc locale.Locale, _ *content.Link, legacyHref *string) (*Target, bool) {
	if legacyHref == nil {
		return nil, false
	}
	href := strings.TrimSpace(*legacyHref)
	if href == "" {
		return internalTarget(loc, ""), true
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return &Target{Href: href, External: true, NewTab: true}, true
	}
	return internalTarget(loc, href), true
}

// internalTarget builds "/{locale}/{segment}". The segment loses one leading
// slash; a segment of nothing but slashes collapses to the locale root.
func internalTarget(loc locale.Locale, segment string) *Target {
	segment = strings.TrimPrefix(segment, "/")
	if strings.Trim(segment, "/") == "" {
		segment = ""
	}
	href := "/" + loc.String()
	if segment != "" {
		href += "/" + segment
	}
	return &Target{Href: href}
}
