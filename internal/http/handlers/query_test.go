package handlers

import (
	"net/url"
	"testing"
)

func TestParseTheme(t *testing.T) {
	cases := map[string]string{
		"":              "dark",
		"light":         "light",
		" Transparent ": "transparent",
		"neon":          "dark",
	}
	for raw, want := range cases {
		if got := parseTheme(url.Values{"theme": {raw}}); got != want {
			t.Fatalf("parseTheme(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseLimit(t *testing.T) {
	cases := []struct {
		raw  string
		def  int
		want int
	}{
		{"", 8, 8},
		{"3", 8, 3},
		{"x", 8, 8},
		{"2.5", 5, 5},
		{"-1", 8, 0},
		{"500", 8, 50},
		{"", 80, 50},
	}
	for _, tc := range cases {
		q := url.Values{}
		if tc.raw != "" {
			q.Set("upcoming", tc.raw)
		}
		if got := parseLimit(q, "upcoming", tc.def); got != tc.want {
			t.Fatalf("parseLimit(%q, %d) = %d, want %d", tc.raw, tc.def, got, tc.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	if !parseBool(url.Values{}, "standings", true) {
		t.Fatalf("expected default when absent")
	}
	for _, raw := range []string{"0", "false", "NO", " off "} {
		if parseBool(url.Values{"standings": {raw}}, "standings", true) {
			t.Fatalf("expected %q to be false", raw)
		}
	}
	for _, raw := range []string{"1", "yes", "", "anything"} {
		if !parseBool(url.Values{"standings": {raw}}, "standings", false) {
			t.Fatalf("expected %q to be true", raw)
		}
	}
}

func TestParseHeight(t *testing.T) {
	cases := map[string]int{"": 64, "96": 96, "tall": 64, "0": 64, "-5": 64}
	for raw, want := range cases {
		if got := parseHeight(url.Values{"height": {raw}}); got != want {
			t.Fatalf("parseHeight(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestParseLogo(t *testing.T) {
	cases := map[string]string{
		"https://cdn.example.com/logo.png": "https://cdn.example.com/logo.png",
		"http://example.com/a.svg":         "http://example.com/a.svg",
		"//example.com/a.svg":              "",
		"/static/logo.png":                 "",
		"data:image/png;base64,AAAA":       "",
		"javascript:alert(1)":              "",
		"":                                 "",
	}
	for raw, want := range cases {
		if got := parseLogo(url.Values{"logo": {raw}}); got != want {
			t.Fatalf("parseLogo(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestCSSValue(t *testing.T) {
	accepted := []string{"#154734", "rgba(0, 0, 0, 0.5)", "linear-gradient(90deg, #111 0%, #222 100%)", "navy"}
	for _, raw := range accepted {
		if got, ok := cssValue(raw); !ok || got != raw {
			t.Fatalf("expected %q accepted, got %q ok=%v", raw, got, ok)
		}
	}
	rejected := []string{"", "red;}", "url(http://x)", "expression(alert(1))", "</style>", `"quoted"`}
	for _, raw := range rejected {
		if _, ok := cssValue(raw); ok {
			t.Fatalf("expected %q rejected", raw)
		}
	}
}
