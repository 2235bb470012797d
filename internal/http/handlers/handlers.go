package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-ticker-service/internal/app/widget"
	domainwidget "github.com/preston-bernstein/nhl-ticker-service/internal/domain/widget"
	"github.com/preston-bernstein/nhl-ticker-service/internal/poller"
)

// TeamResolver validates requested team codes and names them.
type TeamResolver interface {
	ResolveCode(ctx context.Context, raw string) string
	DisplayName(ctx context.Context, code string) string
}

// WidgetBuilder assembles the view model behind every widget route.
type WidgetBuilder interface {
	Build(ctx context.Context, req widget.Request) (domainwidget.ViewModel, error)
}

// Defaults are the configured list sizes used when a request omits them.
type Defaults struct {
	LimitUpcoming int
	LimitRecent   int
}

// Handler wires HTTP routes to the widget services.
type Handler struct {
	teams    TeamResolver
	widgets  WidgetBuilder
	defaults Defaults
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. A nil statusFn reports the service as always ready.
func NewHandler(teams TeamResolver, widgets WidgetBuilder, defaults Defaults, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		teams:    teams,
		widgets:  widgets,
		defaults: defaults,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches by exact path.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/widget":
		h.WidgetRedirect(w, r)
	case "/api":
		h.APIRedirect(w, r)
	case "/widget/hockey":
		h.Widget(w, r)
	case "/widget/hockey/upcoming":
		h.WidgetUpcoming(w, r)
	case "/widget/hockey/recent":
		h.WidgetRecent(w, r)
	case "/widget/hockey/standings":
		h.WidgetStandings(w, r)
	case "/widget/hockey/banner":
		h.Banner(w, r)
	case "/api/hockey":
		h.API(w, r)
	case "/api/hockey/upcoming":
		h.APIUpcoming(w, r)
	case "/api/hockey/recent":
		h.APIRecent(w, r)
	case "/api/hockey/standings":
		h.APIStandings(w, r)
	default:
		h.NotFound(w, r)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the cache warmer has succeeded recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// WidgetRedirect sends the bare widget path to the hockey widget.
func (h *Handler) WidgetRedirect(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.redirect(w, r, "/widget/hockey")
}

// APIRedirect sends the bare API path to the hockey API.
func (h *Handler) APIRedirect(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.redirect(w, r, "/api/hockey")
}

// NotFound answers unknown paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func (h *Handler) redirect(w nethttp.ResponseWriter, r *nethttp.Request, target string) {
	if !h.allowGet(w, r) {
		return
	}
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	nethttp.Redirect(w, r, target, nethttp.StatusFound)
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method == nethttp.MethodGet {
		return true
	}
	w.Header().Set("Allow", nethttp.MethodGet)
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	return false
}
