package handlers

import (
	nethttp "net/http"

	domainwidget "github.com/preston-bernstein/nhl-ticker-service/internal/domain/widget"
)

// API serves the full JSON document: upcoming, recent and, unless disabled, standings.
func (h *Handler) API(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveJSON(w, r, fullView)
}

// APIUpcoming serves upcoming games only.
func (h *Handler) APIUpcoming(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveJSON(w, r, upcomingView)
}

// APIRecent serves recent games only.
func (h *Handler) APIRecent(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveJSON(w, r, recentView)
}

// APIStandings serves the division table only.
func (h *Handler) APIStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.serveJSON(w, r, standingsView)
}

func (h *Handler) serveJSON(w nethttp.ResponseWriter, r *nethttp.Request, v view) {
	if !h.allowGet(w, r) {
		return
	}
	res, ok := h.load(w, r, v)
	if !ok {
		return
	}
	resp := domainwidget.NewResponse(res.VM, res.Team, res.TeamName, res.Sections)
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}
