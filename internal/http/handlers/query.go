package handlers

import (
	"net/url"
	"strconv"
	"strings"
)

// maxLimit caps how many games a single list may request.
const maxLimit = 50

const defaultBannerHeight = 64

var themes = map[string]struct{}{"dark": {}, "light": {}, "transparent": {}}

var falseValues = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}

func parseTheme(q url.Values) string {
	theme := strings.ToLower(strings.TrimSpace(q.Get("theme")))
	if _, ok := themes[theme]; !ok {
		return "dark"
	}
	return theme
}

// parseLimit reads an integer list size. Garbage yields def; the result is clamped to [0, maxLimit].
func parseLimit(q url.Values, name string, def int) int {
	n := def
	if raw := strings.TrimSpace(q.Get(name)); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			n = v
		}
	}
	return min(max(n, 0), maxLimit)
}

func parseBool(q url.Values, name string, def bool) bool {
	if !q.Has(name) {
		return def
	}
	_, off := falseValues[strings.ToLower(strings.TrimSpace(q.Get(name)))]
	return !off
}

func parseHeight(q url.Values) int {
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("height"))); err == nil && v > 0 {
		return v
	}
	return defaultBannerHeight
}

// parseLogo keeps absolute http(s) URLs only.
func parseLogo(q url.Values) string {
	logo := strings.TrimSpace(q.Get("logo"))
	u, err := url.Parse(logo)
	if logo == "" || err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return logo
}
