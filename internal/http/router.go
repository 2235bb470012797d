package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-ticker-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Paths match exactly;
// everything else falls through to a JSON 404.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/widget", handler.WidgetRedirect)
	mux.HandleFunc("/api", handler.APIRedirect)

	mux.HandleFunc("/widget/hockey", handler.Widget)
	mux.HandleFunc("/widget/hockey/upcoming", handler.WidgetUpcoming)
	mux.HandleFunc("/widget/hockey/recent", handler.WidgetRecent)
	mux.HandleFunc("/widget/hockey/standings", handler.WidgetStandings)
	mux.HandleFunc("/widget/hockey/banner", handler.Banner)

	mux.HandleFunc("/api/hockey", handler.API)
	mux.HandleFunc("/api/hockey/upcoming", handler.APIUpcoming)
	mux.HandleFunc("/api/hockey/recent", handler.APIRecent)
	mux.HandleFunc("/api/hockey/standings", handler.APIStandings)

	mux.HandleFunc("/", handler.NotFound)
	return mux
}
