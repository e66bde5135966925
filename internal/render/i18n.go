// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// i18n.go holds the chrome strings (navigation, filters, pagination) in the
// three site languages, plus locale-aware date formatting. Editorial content
// arrives already translated from the content platform; only this fixed UI
// vocabulary lives in code.
package render

import (
	"fmt"
	"time"

	"alhikma/internal/locale"
)

// messages maps a UI key to its translations. English is the fallback when
// a translation is missing.
var messages = map[string]map[locale.Locale]string{
	"nav.home":       {locale.Arabic: "الرئيسية", locale.English: "Home", locale.Italian: "Home"},
	"nav.about":      {locale.Arabic: "عن المدرسة", locale.English: "About", locale.Italian: "Chi siamo"},
	"nav.admissions": {locale.Arabic: "القبول والتسجيل", locale.English: "Admissions", locale.Italian: "Ammissioni"},
	"nav.events":     {locale.Arabic: "الفعاليات", locale.English: "Events", locale.Italian: "Eventi"},
	"nav.news":       {locale.Arabic: "الأخبار", locale.English: "News", locale.Italian: "Notizie"},
	"nav.gallery":    {locale.Arabic: "معرض الصور", locale.English: "Gallery", locale.Italian: "Galleria"},
	"nav.contact":    {locale.Arabic: "اتصل بنا", locale.English: "Contact", locale.Italian: "Contatti"},

	"home.divisions": {locale.Arabic: "المراحل الدراسية", locale.English: "Our Divisions", locale.Italian: "I nostri cicli"},
	"home.campus":    {locale.Arabic: "جولة في الحرم المدرسي", locale.English: "Around Campus", locale.Italian: "Il campus"},

	"events.title":   {locale.Arabic: "الفعاليات", locale.English: "Events", locale.Italian: "Eventi"},
	"events.search":  {locale.Arabic: "ابحث في الفعاليات", locale.English: "Search events", locale.Italian: "Cerca eventi"},
	"events.section": {locale.Arabic: "المرحلة", locale.English: "Section", locale.Italian: "Sezione"},
	"events.all":     {locale.Arabic: "كل المراحل", locale.English: "All sections", locale.Italian: "Tutte le sezioni"},
	"events.from":    {locale.Arabic: "من تاريخ", locale.English: "From", locale.Italian: "Dal"},
	"events.to":      {locale.Arabic: "إلى تاريخ", locale.English: "To", locale.Italian: "Al"},
	"events.apply":   {locale.Arabic: "تصفية", locale.English: "Filter", locale.Italian: "Filtra"},
	"events.clear":   {locale.Arabic: "مسح التصفية", locale.English: "Clear filters", locale.Italian: "Azzera filtri"},
	"events.none":    {locale.Arabic: "لا توجد فعاليات مطابقة", locale.English: "No matching events", locale.Italian: "Nessun evento trovato"},

	"pagination.prev": {locale.Arabic: "السابق", locale.English: "Previous", locale.Italian: "Precedente"},
	"pagination.next": {locale.Arabic: "التالي", locale.English: "Next", locale.Italian: "Successiva"},

	"news.title":    {locale.Arabic: "الأخبار", locale.English: "News", locale.Italian: "Notizie"},
	"gallery.title": {locale.Arabic: "معرض الصور", locale.English: "Gallery", locale.Italian: "Galleria"},

	"common.readMore": {locale.Arabic: "اقرأ المزيد", locale.English: "Read more", locale.Italian: "Leggi di più"},
	"common.location": {locale.Arabic: "المكان", locale.English: "Location", locale.Italian: "Luogo"},

	"notfound.title": {locale.Arabic: "الصفحة غير موجودة", locale.English: "Page not found", locale.Italian: "Pagina non trovata"},
	"notfound.body": {
		locale.Arabic:  "عذراً، الصفحة التي تبحث عنها غير متوفرة.",
		locale.English: "Sorry, the page you are looking for does not exist.",
		locale.Italian: "Spiacenti, la pagina che cerchi non esiste.",
	},
	"notfound.home": {locale.Arabic: "العودة إلى الرئيسية", locale.English: "Back to home", locale.Italian: "Torna alla home"},

	"popup.close":   {locale.Arabic: "إغلاق", locale.English: "Close", locale.Italian: "Chiudi"},
	"footer.follow": {locale.Arabic: "تابعنا", locale.English: "Follow us", locale.Italian: "Seguici"},
}

// Translate returns the UI string for a key, falling back to English and
// finally to the key itself so a missing entry stays visible, not fatal.
func Translate(loc locale.Locale, key string) string {
	translations, ok := messages[key]
	if !ok {
		return key
	}
	if s, ok := translations[loc]; ok {
		return s
	}
	if s, ok := translations[locale.English]; ok {
		return s
	}
	return key
}

var monthNames = map[locale.Locale][12]string{
	locale.Arabic: {
		"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
		"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
	},
	locale.Italian: {
		"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	},
}

// dateLayouts are the timestamp shapes the content platform produces.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// FormatEventDate renders a content-platform date string for display.
// Unparsable input comes back verbatim rather than erroring — dates are
// decoration here, filters deal with parsing separately.
func FormatEventDate(loc locale.Locale, raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return FormatDate(loc, t)
		}
	}
	return raw
}

// FormatDate renders a date with localized month names.
func FormatDate(loc locale.Locale, t time.Time) string {
	switch loc {
	case locale.Arabic:
		return fmt.Sprintf("%d %s %d", t.Day(), monthNames[locale.Arabic][t.Month()-1], t.Year())
	case locale.Italian:
		return fmt.Sprintf("%d %s %d", t.Day(), monthNames[locale.Italian][t.Month()-1], t.Year())
	default:
		return t.Format("January 2, 2006")
	}
}
