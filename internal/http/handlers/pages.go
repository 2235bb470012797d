package handlers

import (
	"embed"
	"html/template"
	nethttp "net/http"
	"regexp"
	"strings"

	domainteams "github.com/preston-bernstein/nhl-ticker-service/internal/domain/teams"
	domainwidget "github.com/preston-bernstein/nhl-ticker-service/internal/domain/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("pages").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFS, "templates/*.html"))

// cssValuePattern admits colors and gradients; url() and expression() are rejected separately.
var cssValuePattern = regexp.MustCompile(`^[a-zA-Z0-9#%(),.\s-]{1,200}$`)

type widgetPage struct {
	Title    string
	Theme    string
	Team     string
	TeamName string
	Sections domainwidget.Sections
	VM       domainwidget.ViewModel
}

type bannerPage struct {
	Team       string
	TeamName   string
	Background template.CSS
	Foreground template.CSS
	Accent     template.CSS
	FontFamily template.CSS
	FontHref   string
	Height     int
	Logo       string
}

// Widget renders upcoming and recent games with an optional standings table.
func (h *Handler) Widget(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveHTML(w, r, fullView, "Hockey")
}

// WidgetUpcoming renders upcoming games only.
func (h *Handler) WidgetUpcoming(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveHTML(w, r, upcomingView, "Upcoming")
}

// WidgetRecent renders recent games only.
func (h *Handler) WidgetRecent(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveHTML(w, r, recentView, "Recent")
}

// WidgetStandings renders the division table, highlighting the requested team.
func (h *Handler) WidgetStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveHTML(w, r, standingsView, "Standings")
}

func (h *Handler) serveHTML(w nethttp.ResponseWriter, r *nethttp.Request, v view, title string) {
	if !h.allowGet(w, r) {
		return
	}
	res, ok := h.load(w, r, v)
	if !ok {
		return
	}
	writeHTML(w, r, v.page, widgetPage{
		Title:    title,
		Theme:    parseTheme(r.URL.Query()),
		Team:     res.Team,
		TeamName: res.TeamName,
		Sections: res.Sections,
		VM:       res.VM,
	}, h.logger)
}

// Banner renders a team name strip using the team's branding preset.
// bg overrides the background; logo must be an absolute http(s) URL.
func (h *Handler) Banner(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	ctx := r.Context()
	q := r.URL.Query()
	team := h.teams.ResolveCode(ctx, q.Get("team"))
	brand := domainteams.BrandingFor(team)

	bg := brand.Background
	if custom, ok := cssValue(q.Get("bg")); ok {
		bg = custom
	}

	writeHTML(w, r, "banner.html", bannerPage{
		Team:       team,
		TeamName:   h.teams.DisplayName(ctx, team),
		Background: template.CSS(bg),
		Foreground: template.CSS(brand.Foreground),
		Accent:     template.CSS(brand.Accent),
		FontFamily: template.CSS(brand.FontFamily),
		FontHref:   brand.FontHref,
		Height:     parseHeight(q),
		Logo:       parseLogo(q),
	}, h.logger)
}

// cssValue accepts a caller-supplied color or gradient.
func cssValue(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !cssValuePattern.MatchString(raw) {
		return "", false
	}
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") {
		return "", false
	}
	return raw, true
}
