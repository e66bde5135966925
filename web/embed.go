// Package web provides embedded static assets (CSS, JS, images) for the
// public site. Everything under web/static/ is compiled into the binary
// and served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the site stylesheet,
// the small widget script (nav drawer, locale switcher, popup dismiss)
// and the campus carousel photos.
//
//go:embed all:static
var StaticFS embed.FS
