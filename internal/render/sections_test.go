// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"strings"
	"testing"

	"alhikma/internal/content"
	"alhikma/internal/locale"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestHeroWords(t *testing.T) {
	words := HeroWords("Learn and Grow")
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3", len(words))
	}
	if words[0].Accent || words[2].Accent {
		t.Error("only the connective should be accented")
	}
	if !words[1].Accent {
		t.Error(`"and" should be accented`)
	}

	// Case-insensitive, and absent connectives mean no accent at all.
	if !HeroWords("Play AND Learn")[1].Accent {
		t.Error(`"AND" should be accented`)
	}
	for _, w := range HeroWords("مدرسة الحكمة الدولية") {
		if w.Accent {
			t.Errorf("unexpected accent on %q", w.Text)
		}
	}
	if got := HeroWords(""); len(got) != 0 {
		t.Errorf("empty line produced %d words", len(got))
	}
}

func TestSectionsOrderAndSkips(t *testing.T) {
	r := newTestRenderer(t)

	blocks := content.BlockList{
		content.VideoHero{TitleLine1: "Welcome", TitleLine2: "Learn and Grow"},
		content.UnknownBlock{Type: "threeDTour"},
		content.ArrowDivider{Direction: "down"},
		content.ParentsTestimonials{Heading: "Parents say"}, // empty items: skipped
		content.LatestEvents{Heading: "Recently"},
	}

	out := r.Sections(locale.English, blocks, Aux{})
	if len(out) != 3 {
		t.Fatalf("got %d fragments, want 3 (unknown and empty testimonials skipped)", len(out))
	}
	if !strings.Contains(string(out[0]), "Welcome") {
		t.Errorf("first fragment is not the hero: %s", out[0])
	}
	if !strings.Contains(string(out[1]), "arrow-down") {
		t.Errorf("second fragment is not the divider: %s", out[1])
	}
	if !strings.Contains(string(out[2]), "Recently") {
		t.Errorf("third fragment is not the event feed: %s", out[2])
	}
}

func TestSectionHeroAccent(t *testing.T) {
	r := newTestRenderer(t)

	html, ok := r.Section(locale.English, content.VideoHero{TitleLine2: "Learn and Grow"}, Aux{})
	if !ok {
		t.Fatal("hero did not render")
	}
	if !strings.Contains(string(html), `<span class="hero-accent">and</span>`) {
		t.Errorf("hero accent missing: %s", html)
	}
}

func TestSectionHeroCTA(t *testing.T) {
	r := newTestRenderer(t)

	hero := content.VideoHero{
		TitleLine1: "Welcome",
		PrimaryCTA: &content.Link{Kind: "internal", Label: "Apply now", RouteKey: "admissions"},
	}
	html, ok := r.Section(locale.Arabic, hero, Aux{})
	if !ok {
		t.Fatal("hero did not render")
	}
	if !strings.Contains(string(html), `href="/ar/admissions"`) {
		t.Errorf("CTA link missing or wrong: %s", html)
	}
	if !strings.Contains(string(html), "Apply now") {
		t.Errorf("CTA label missing: %s", html)
	}
}

func TestSectionEventFeedLimitAndBuckets(t *testing.T) {
	r := newTestRenderer(t)

	aux := Aux{
		Upcoming: []content.EventSummary{
			{Title: "One", Slug: "one"},
			{Title: "Two", Slug: "two"},
			{Title: "Three", Slug: "three"},
		},
		SectionUpcoming: map[string][]content.EventSummary{
			"sec-1": {{Title: "Scoped", Slug: "scoped"}},
		},
	}

	// Global block with a limit of 2 shows only the first two.
	two := 2
	html, ok := r.Section(locale.English, content.UpcomingEvents{Limit: &two}, aux)
	if !ok {
		t.Fatal("feed did not render")
	}
	s := string(html)
	if !strings.Contains(s, "One") || !strings.Contains(s, "Two") {
		t.Errorf("first two events missing: %s", s)
	}
	if strings.Contains(s, "Three") {
		t.Errorf("limit of 2 leaked a third event: %s", s)
	}

	// Section-scoped block reads its own bucket.
	html, ok = r.Section(locale.English, content.UpcomingEvents{SectionID: "sec-1"}, aux)
	if !ok {
		t.Fatal("scoped feed did not render")
	}
	if !strings.Contains(string(html), "Scoped") {
		t.Errorf("scoped feed missing its events: %s", html)
	}
	if strings.Contains(string(html), "One") {
		t.Errorf("scoped feed leaked global events: %s", html)
	}

	// A bucket that was never populated renders an empty feed, not an error.
	html, ok = r.Section(locale.English, content.UpcomingEvents{SectionID: "missing"}, aux)
	if !ok {
		t.Fatal("feed over a missing bucket did not render")
	}
	if strings.Contains(string(html), "card-grid") {
		t.Errorf("empty feed should omit the grid: %s", html)
	}
}

func TestSectionAnnouncementsScoped(t *testing.T) {
	r := newTestRenderer(t)

	aux := Aux{
		Announcements: []content.Announcement{
			{Title: "Global notice"},
			{Title: "Primary only", SectionIDs: []string{"sec-1"}},
		},
	}

	html, ok := r.Section(locale.English, content.Announcements{SectionID: "sec-1"}, aux)
	if !ok {
		t.Fatal("announcements did not render")
	}
	s := string(html)
	if !strings.Contains(s, "Primary only") {
		t.Errorf("scoped announcement missing: %s", s)
	}
	if strings.Contains(s, "Global notice") {
		t.Errorf("scoped block leaked unscoped announcements: %s", s)
	}
}

func TestSectionUnknownBlockSkipped(t *testing.T) {
	r := newTestRenderer(t)
	if _, ok := r.Section(locale.English, content.UnknownBlock{Type: "mystery"}, Aux{}); ok {
		t.Error("unknown block should render nothing")
	}
}

func TestDivisionsGrid(t *testing.T) {
	r := newTestRenderer(t)

	if _, ok := r.DivisionsGrid(locale.English, nil); ok {
		t.Error("empty section list should render nothing")
	}

	html, ok := r.DivisionsGrid(locale.Arabic, []content.SchoolSection{
		{ID: "s1", Title: "الابتدائية", Slug: "primary"},
	})
	if !ok {
		t.Fatal("divisions grid did not render")
	}
	if !strings.Contains(string(html), `href="/ar/primary"`) {
		t.Errorf("division link missing: %s", html)
	}
}

func TestTruncate(t *testing.T) {
	items := []int{1, 2, 3}
	if got := truncate(items, 2); len(got) != 2 {
		t.Errorf("got %d items, want 2", len(got))
	}
	if got := truncate(items, 5); len(got) != 3 {
		t.Errorf("got %d items, want all 3", len(got))
	}
	if got := truncate(items, 0); len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
	if got := truncate(items, -1); len(got) != 0 {
		t.Errorf("negative limit: got %d items, want 0", len(got))
	}
}
