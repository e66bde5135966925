// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML rendering for the public site. Page
// templates are embedded in the binary; each one pairs with the base
// layout, and block fragments render the content-block union for the
// section dispatcher.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"alhikma/internal/content"
	"alhikma/internal/locale"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// Alternate is one locale-switcher entry: the same page in another language.
type Alternate struct {
	Locale  locale.Locale
	Name    string
	Href    string
	Current bool
}

// PageData is the envelope every page template receives. Data carries the
// page-specific payload.
type PageData struct {
	Locale          locale.Locale
	Title           string
	MetaDescription string
	Settings        *content.SiteSettings
	Alternates      []Alternate
	Popup           *content.Announcement // urgent popup, nil when suppressed
	Data            any
}

// Renderer parses and executes the embedded site templates.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

// fragmentPrefix marks templates that render inside pages rather than as
// pages of their own (content blocks, fixed home sections, the popup).
const fragmentPrefix = "_"

// New parses all embedded site templates. Fragment files (underscore
// prefix) are collected into one shared set; every other file becomes a
// page template paired with the base layout.
func New() (*Renderer, error) {
	funcs := builtinFuncs()

	fragments := template.New("fragments").Funcs(funcs)
	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	var pageFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, fragmentPrefix) {
			if _, err := fragments.ParseFS(siteFS, "templates/site/"+name); err != nil {
				return nil, fmt.Errorf("parse fragment %s: %w", name, err)
			}
			continue
		}
		if name != "base.html" {
			pageFiles = append(pageFiles, name)
		}
	}

	r := &Renderer{
		pages:     make(map[string]*template.Template, len(pageFiles)),
		fragments: fragments,
	}

	for _, name := range pageFiles {
		tmplName := strings.TrimSuffix(filepath.Base(name), ".html")
		tmpl, err := template.New("base.html").Funcs(funcs).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[tmplName] = tmpl
	}

	return r, nil
}

// Render executes a page template into bytes, so the result can go to the
// page cache as well as the response.
func (r *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteHTML sends rendered HTML with the right content type.
func WriteHTML(w http.ResponseWriter, status int, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}

// Alternates builds the locale-switcher entries for the current page.
// rest is the locale-less remainder of the path ("" for home, "/events", ...).
func Alternates(current locale.Locale, rest string) []Alternate {
	out := make([]Alternate, 0, len(locale.Supported()))
	for _, loc := range locale.Supported() {
		out = append(out, Alternate{
			Locale:  loc,
			Name:    loc.Name(),
			Href:    "/" + loc.String() + rest,
			Current: loc == current,
		})
	}
	return out
}

// builtinFuncs are the helpers available to every site template.
func builtinFuncs() template.FuncMap {
	return template.FuncMap{
		"t":          Translate,
		"formatDate": FormatEventDate,
		"dir": func(loc locale.Locale) string {
			return loc.Dir()
		},
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"localePath": func(loc locale.Locale, segment string) string {
			if segment == "" {
				return "/" + loc.String()
			}
			return "/" + loc.String() + "/" + strings.TrimPrefix(segment, "/")
		},
	}
}
