// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package locale defines the closed set of site languages and helpers for
// parsing and negotiating them. Every route must resolve to one of these
// locales before any content query runs.
package locale

import (
	"golang.org/x/text/language"
)

// Locale is a supported site language, identified by its two-letter code.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
	Italian Locale = "it"
)

// Default is the locale unsupported two-letter path segments redirect to.
const Default = Arabic

// supported lists the locales in priority order. Arabic first — it is both
// the default and the language most visitors browse in.
var supported = []Locale{Arabic, English, Italian}

// matcher negotiates Accept-Language headers against the supported set.
var matcher = language.NewMatcher([]language.Tag{
	language.Arabic,
	language.English,
	language.Italian,
})

// Supported returns the supported locales in priority order.
// The returned slice must not be mutated.
func Supported() []Locale {
	return supported
}

// Parse returns the locale for a raw path segment and whether it is supported.
func Parse(s string) (Locale, bool) {
	switch Locale(s) {
	case Arabic, English, Italian:
		return Locale(s), true
	}
	return "", false
}

// String returns the two-letter code.
func (l Locale) String() string { return string(l) }

// Dir returns the writing direction for HTML dir attributes.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Name returns the language's own name, used by the locale switcher.
func (l Locale) Name() string {
	switch l {
	case Arabic:
		return "العربية"
	case Italian:
		return "Italiano"
	default:
		return "English"
	}
}

// Match negotiates an Accept-Language header value against the supported
// locales. An empty or unintelligible header yields the default.
func Match(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[index]
}
