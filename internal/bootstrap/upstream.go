package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers/nhle"
)

const (
	upstreamNHLE    = "nhle"
	upstreamFixture = "fixture"
)

func selectUpstream(cfg config.UpstreamConfig, logger *slog.Logger) providers.Upstream {
	switch cfg.Name {
	case upstreamNHLE, "":
		return nhle.NewClient(nhle.Config{
			BaseURL:    cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
	case upstreamFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown upstream, falling back to nhle", slog.String(logging.FieldUpstream, cfg.Name))
		return nhle.NewClient(nhle.Config{
			BaseURL:    cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
	}
}

// upstreamName returns a lower-cased upstream name for logs and metrics,
// deriving it from the implementation when not configured.
func upstreamName(raw string, upstream providers.Upstream) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if upstream != nil {
		return strings.ToLower(fmt.Sprintf("%T", upstream))
	}
	return "upstream"
}
