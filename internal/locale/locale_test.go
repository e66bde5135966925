// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Locale
		ok    bool
	}{
		{"ar", Arabic, true},
		{"en", English, true},
		{"it", Italian, true},
		{"fr", "", false},
		{"AR", "", false}, // path segments are case-sensitive
		{"ara", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDir(t *testing.T) {
	if got := Arabic.Dir(); got != "rtl" {
		t.Errorf("Arabic.Dir() = %q, want rtl", got)
	}
	if got := English.Dir(); got != "ltr" {
		t.Errorf("English.Dir() = %q, want ltr", got)
	}
	if got := Italian.Dir(); got != "ltr" {
		t.Errorf("Italian.Dir() = %q, want ltr", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Locale
	}{
		{"empty header", "", Default},
		{"garbage header", ";;;", Default},
		{"exact arabic", "ar", Arabic},
		{"exact italian", "it", Italian},
		{"english with region", "en-GB,en;q=0.9", English},
		{"regional arabic", "ar-EG", Arabic},
		{"weighted preference", "it;q=0.9, en;q=0.4", Italian},
		{"unsupported language", "ja-JP", Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.header); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestSupportedOrder(t *testing.T) {
	got := Supported()
	if len(got) != 3 {
		t.Fatalf("got %d supported locales, want 3", len(got))
	}
	if got[0] != Default {
		t.Errorf("first supported locale is %q, want the default %q", got[0], Default)
	}
}
