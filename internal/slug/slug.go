// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// Letters from any script are kept, so Arabic and Italian titles slugify
// instead of collapsing to nothing. Used as the fallback when a school
// section arrives from the content platform without a slug of its own.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonWord matches anything that isn't a letter, digit, space, or hyphen.
	nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// whitespace matches runs of spaces to turn into a single hyphen.
	whitespace = regexp.MustCompile(`\s+`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Sports Day 2026!" → "sports-day-2026"; "المرحلة الابتدائية"
// keeps its Arabic letters.
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonWord.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
