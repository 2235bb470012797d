package nhle

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "nhl-ticker-service/1.0"
	// Error bodies are truncated to keep logs readable.
	maxErrorBody = 512

	schedulePath  = "/v1/club-schedule-season/%s/now"
	tvPath        = "/v1/network/tv-schedule/%s"
	standingsPath = "/v1/standings/now"
)
