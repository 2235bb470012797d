// Package games builds the upcoming and recent game lists for a team from the
// upstream schedule, resolving broadcast networks for upcoming games.
package games

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-ticker-service/internal/app/networks"
	"github.com/preston-bernstein/nhl-ticker-service/internal/cache"
	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
	domaingames "github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
)

// tvFetchLimit bounds concurrent tv-schedule fetches per request.
const tvFetchLimit = 4

// Config carries the collaborators a Service needs.
type Config struct {
	Upstream    providers.Upstream
	Cache       *cache.Cache
	Resolver    *networks.Resolver
	Location    *time.Location
	ScheduleTTL time.Duration
	TVTTL       time.Duration
	Logger      *slog.Logger
	Now         func() time.Time
}

// Service serves normalized game lists. It holds no per-team state, so one
// instance answers for every team.
type Service struct {
	upstream    providers.Upstream
	cache       *cache.Cache
	resolver    *networks.Resolver
	loc         *time.Location
	scheduleTTL time.Duration
	tvTTL       time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewService constructs a Service, filling in defaults for optional fields.
func NewService(cfg Config) *Service {
	s := &Service{
		upstream:    cfg.Upstream,
		cache:       cfg.Cache,
		resolver:    cfg.Resolver,
		loc:         cfg.Location,
		scheduleTTL: cfg.ScheduleTTL,
		tvTTL:       cfg.TVTTL,
		logger:      cfg.Logger,
		now:         cfg.Now,
	}
	if s.cache == nil {
		s.cache = cache.New()
	}
	if s.resolver == nil {
		s.resolver = networks.NewResolver(config.DefaultNetworkConfig())
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Result holds both game buckets for one team.
type Result struct {
	Upcoming []domaingames.Game
	Recent   []domaingames.Game
}

// Schedule returns the cached schedule document for team.
func (s *Service) Schedule(ctx context.Context, team string) (payload.Object, error) {
	if s.upstream == nil {
		return nil, providers.ErrUnavailable
	}
	return cache.GetOrLoad(s.cache, "schedule:"+team, s.scheduleTTL, func() (payload.Object, error) {
		return s.upstream.TeamSchedule(ctx, team)
	})
}

// TVSchedule returns the cached tv schedule document for a YYYY-MM-DD date.
func (s *Service) TVSchedule(ctx context.Context, date string) (payload.Object, error) {
	if s.upstream == nil {
		return nil, providers.ErrUnavailable
	}
	return cache.GetOrLoad(s.cache, "tv:"+date, s.tvTTL, func() (payload.Object, error) {
		return s.upstream.TVSchedule(ctx, date)
	})
}

type entry struct {
	game domaingames.Game
	raw  payload.Object
}

// Games returns up to limitUpcoming games starting at or after now, soonest
// first, and up to limitRecent earlier games, latest first. Negative limits
// are treated as zero. Networks are resolved only for the upcoming games kept.
// A schedule failure is returned; tv schedule failures leave networks empty.
func (s *Service) Games(ctx context.Context, team string, limitUpcoming, limitRecent int) (Result, error) {
	doc, err := s.Schedule(ctx, team)
	if err != nil {
		return Result{}, fmt.Errorf("load schedule for %s: %w", team, err)
	}

	normalizer := NewNormalizer(team, s.loc)
	now := s.now().In(s.loc)

	var upcoming, recent []entry
	for _, raw := range FlattenSchedule(doc) {
		g, ok := normalizer.Normalize(raw)
		if !ok {
			continue
		}
		if g.Upcoming(now) {
			upcoming = append(upcoming, entry{game: g, raw: raw})
		} else {
			recent = append(recent, entry{game: g, raw: raw})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].game.When.Before(upcoming[j].game.When) })
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].game.When.After(recent[j].game.When) })
	upcoming = truncate(upcoming, limitUpcoming)
	recent = truncate(recent, limitRecent)

	s.attachNetworks(ctx, upcoming)

	logging.Debug(logging.FromContext(ctx, s.logger), "games normalized",
		logging.FieldTeam, team,
		logging.FieldCount, len(upcoming)+len(recent),
	)
	return Result{Upcoming: games(upcoming), Recent: games(recent)}, nil
}

// attachNetworks fills in display networks for upcoming games, falling back to
// the tv schedule of each game's date when the entry embeds none.
func (s *Service) attachNetworks(ctx context.Context, upcoming []entry) {
	embedded := make([][]string, len(upcoming))
	var dates []string
	seen := map[string]struct{}{}
	for i, e := range upcoming {
		embedded[i] = networks.FromGame(e.raw)
		if len(embedded[i]) > 0 || e.game.GameID == "" {
			continue
		}
		if _, ok := seen[e.game.DateKey]; !ok {
			seen[e.game.DateKey] = struct{}{}
			dates = append(dates, e.game.DateKey)
		}
	}

	tvByDate := s.prefetchTV(ctx, dates)
	for i := range upcoming {
		raw := embedded[i]
		if len(raw) == 0 && upcoming[i].game.GameID != "" {
			raw = networks.FromTVSchedule(tvByDate[upcoming[i].game.DateKey], upcoming[i].game.GameID)
		}
		upcoming[i].game.Networks = s.resolver.Resolve(raw)
	}
}

func (s *Service) prefetchTV(ctx context.Context, dates []string) map[string]payload.Object {
	out := make(map[string]payload.Object, len(dates))
	if len(dates) == 0 {
		return out
	}
	logger := logging.FromContext(ctx, s.logger)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(tvFetchLimit)
	for _, date := range dates {
		date := date
		g.Go(func() error {
			doc, err := s.TVSchedule(ctx, date)
			if err != nil {
				logging.Warn(logger, "tv schedule unavailable; networks omitted",
					logging.FieldDate, date,
					"error", err,
				)
				return nil
			}
			mu.Lock()
			out[date] = doc
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func truncate(entries []entry, limit int) []entry {
	if limit < 0 {
		limit = 0
	}
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func games(entries []entry) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.game)
	}
	return out
}
