// Package bootstrap builds the component graph shared by the HTTP server and
// the operator CLI.
package bootstrap

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/app/games"
	"github.com/preston-bernstein/nhl-ticker-service/internal/app/networks"
	"github.com/preston-bernstein/nhl-ticker-service/internal/app/standings"
	"github.com/preston-bernstein/nhl-ticker-service/internal/app/teams"
	"github.com/preston-bernstein/nhl-ticker-service/internal/app/widget"
	"github.com/preston-bernstein/nhl-ticker-service/internal/cache"
	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/metrics"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
	"github.com/preston-bernstein/nhl-ticker-service/internal/timeutil"
)

// Components is the wired application.
type Components struct {
	Config    config.Config
	Location  *time.Location
	Cache     *cache.Cache
	Upstream  providers.Upstream
	Resolver  *networks.Resolver
	Games     *games.Service
	Standings *standings.Service
	Teams     *teams.Service
	Widget    *widget.Assembler
	Now       func() time.Time
}

type options struct {
	upstream providers.Upstream
	now      func() time.Time
}

// Option customizes Build.
type Option func(*options)

// WithUpstream replaces the configured upstream (tests, fixtures).
func WithUpstream(u providers.Upstream) Option {
	return func(o *options) { o.upstream = u }
}

// WithClock overrides the time source for the cache and services.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Build wires every service from cfg. The upstream is wrapped so each fetch
// is logged and recorded on recorder.
func Build(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, opts ...Option) Components {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	loc, err := timeutil.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn(logger, "unknown timezone, using UTC", "timezone", cfg.Timezone, "error", err)
	}

	base := o.upstream
	if base == nil {
		base = selectUpstream(cfg.Upstream, logger)
	}
	upstream := providers.NewInstrumented(base, upstreamName(cfg.Upstream.Name, base), logger, recorder)

	c := cache.New(
		cache.WithClock(o.now),
		cache.WithObserver(recorder.RecordCacheLookup),
	)
	resolver := networks.NewResolver(cfg.Networks)

	gamesSvc := games.NewService(games.Config{
		Upstream:    upstream,
		Cache:       c,
		Resolver:    resolver,
		Location:    loc,
		ScheduleTTL: cfg.Cache.ScheduleTTL,
		TVTTL:       cfg.Cache.TVTTL,
		Logger:      logger,
		Now:         o.now,
	})
	standingsSvc := standings.NewService(upstream, c, cfg.Cache.StandingsTTL, logger)
	teamsSvc := teams.NewService(standingsSvc, c, cfg.TeamCode, logger)
	assembler := widget.NewAssembler(widget.Config{
		Games:           gamesSvc,
		Standings:       standingsSvc,
		DefaultDivision: cfg.DefaultDivision,
		Location:        loc,
		Logger:          logger,
		Now:             o.now,
	})

	return Components{
		Config:    cfg,
		Location:  loc,
		Cache:     c,
		Upstream:  upstream,
		Resolver:  resolver,
		Games:     gamesSvc,
		Standings: standingsSvc,
		Teams:     teamsSvc,
		Widget:    assembler,
		Now:       o.now,
	}
}
