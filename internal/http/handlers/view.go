package handlers

import (
	"errors"
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-ticker-service/internal/app/widget"
	domainwidget "github.com/preston-bernstein/nhl-ticker-service/internal/domain/widget"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
)

// view names one widget layout: which lists it shows and the template that renders it.
type view struct {
	page      string
	upcoming  bool
	recent    bool
	standings bool
	// optionalStandings lets ?standings=0 drop the table.
	optionalStandings bool
}

var (
	fullView      = view{page: "widget.html", upcoming: true, recent: true, standings: true, optionalStandings: true}
	upcomingView  = view{page: "upcoming.html", upcoming: true}
	recentView    = view{page: "recent.html", recent: true}
	standingsView = view{page: "standings.html", standings: true}
)

// loaded is the result of resolving a request against a view.
type loaded struct {
	Team     string
	TeamName string
	Sections domainwidget.Sections
	VM       domainwidget.ViewModel
}

// load resolves the team, builds the view model and reports whether the
// caller should continue. On failure the error response has been written.
func (h *Handler) load(w nethttp.ResponseWriter, r *nethttp.Request, v view) (loaded, bool) {
	ctx := r.Context()
	q := r.URL.Query()
	team := h.teams.ResolveCode(ctx, q.Get("team"))

	req := widget.Request{Team: team}
	sections := domainwidget.Sections{Upcoming: v.upcoming, Recent: v.recent}
	if v.upcoming {
		req.LimitUpcoming = parseLimit(q, "upcoming", h.defaults.LimitUpcoming)
	}
	if v.recent {
		req.LimitRecent = parseLimit(q, "recent", h.defaults.LimitRecent)
	}
	if v.standings {
		req.IncludeStandings = !v.optionalStandings || parseBool(q, "standings", true)
		req.Division = q.Get("division")
		sections.Standings = req.IncludeStandings
	}

	vm, err := h.widgets.Build(ctx, req)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		logging.Error(logger, "widget build failed", err, logging.FieldTeam, team)
		msg := "upstream unavailable"
		if !errors.Is(err, widget.ErrNoData) {
			msg = "widget unavailable"
		}
		writeError(w, r, nethttp.StatusBadGateway, msg, h.logger)
		return loaded{}, false
	}

	return loaded{
		Team:     team,
		TeamName: h.teams.DisplayName(ctx, team),
		Sections: sections,
		VM:       vm,
	}, true
}
