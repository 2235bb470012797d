// Package standings serves division tables built from the league standings.
package standings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/cache"
	domainstandings "github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
)

// CacheKey is the cache entry holding the current standings document.
const CacheKey = "standings:now"

// Service loads standings through the shared cache.
type Service struct {
	upstream providers.Upstream
	cache    *cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewService constructs a Service. A nil cache gets a private one.
func NewService(upstream providers.Upstream, c *cache.Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if c == nil {
		c = cache.New()
	}
	return &Service{upstream: upstream, cache: c, ttl: ttl, logger: logger}
}

// Payload returns the cached standings document.
func (s *Service) Payload(ctx context.Context) (payload.Object, error) {
	if s.upstream == nil {
		return nil, providers.ErrUnavailable
	}
	return cache.GetOrLoad(s.cache, CacheKey, s.ttl, func() (payload.Object, error) {
		return s.upstream.Standings(ctx)
	})
}

// Division returns the sorted table for a division name or abbreviation.
func (s *Service) Division(ctx context.Context, division string) ([]domainstandings.Row, error) {
	doc, err := s.Payload(ctx)
	if err != nil {
		return nil, fmt.Errorf("load standings: %w", err)
	}
	rows := Build(doc, division)
	logging.Debug(logging.FromContext(ctx, s.logger), "standings built",
		logging.FieldDivision, division,
		logging.FieldCount, len(rows),
	)
	return rows, nil
}
