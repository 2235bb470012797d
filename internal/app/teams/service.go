// Package teams validates requested team codes against the league registry
// and resolves their display names.
package teams

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	appstandings "github.com/preston-bernstein/nhl-ticker-service/internal/app/standings"
	"github.com/preston-bernstein/nhl-ticker-service/internal/cache"
	domainteams "github.com/preston-bernstein/nhl-ticker-service/internal/domain/teams"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

const (
	registryKey      = "nhl:team_registry"
	registryRetryKey = "nhl:team_registry:retry"
	registryTTL      = 24 * time.Hour
	registryRetryTTL = time.Minute
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// StandingsSource supplies the standings document the registry is built from.
type StandingsSource interface {
	Payload(ctx context.Context) (payload.Object, error)
}

// Index maps team codes to display names.
type Index map[string]string

// Service resolves team codes. The registry is cached for a day; an empty
// registry is retried every minute instead.
type Service struct {
	source      StandingsSource
	cache       *cache.Cache
	defaultTeam string
	logger      *slog.Logger
}

// NewService constructs a Service falling back to defaultTeam.
func NewService(source StandingsSource, c *cache.Cache, defaultTeam string, logger *slog.Logger) *Service {
	if c == nil {
		c = cache.New()
	}
	return &Service{
		source:      source,
		cache:       c,
		defaultTeam: strings.ToUpper(strings.TrimSpace(defaultTeam)),
		logger:      logger,
	}
}

// DefaultTeam returns the configured team code.
func (s *Service) DefaultTeam() string {
	return s.defaultTeam
}

// Registry returns the cached code index. Load failures are returned with an
// empty index.
func (s *Service) Registry(ctx context.Context) (Index, error) {
	idx, err := cache.GetOrLoad(s.cache, registryKey, registryTTL, func() (Index, error) {
		return s.load(ctx)
	})
	if err != nil {
		return Index{}, err
	}
	if len(idx) > 0 {
		return idx, nil
	}
	idx, err = cache.GetOrLoad(s.cache, registryRetryKey, registryRetryTTL, func() (Index, error) {
		return s.load(ctx)
	})
	if err != nil {
		return Index{}, err
	}
	return idx, nil
}

func (s *Service) load(ctx context.Context) (Index, error) {
	if s.source == nil {
		return Index{}, nil
	}
	doc, err := s.source.Payload(ctx)
	if err != nil {
		return nil, err
	}
	return Extract(doc), nil
}

// ResolveCode normalizes a requested team code. Malformed codes and codes
// missing from the registry resolve to the default team; when the registry
// is empty or unavailable any well-formed code is accepted.
func (s *Service) ResolveCode(ctx context.Context, raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		code = s.defaultTeam
	}
	if !codePattern.MatchString(code) {
		return s.defaultTeam
	}
	idx, err := s.Registry(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "team registry unavailable",
			logging.FieldTeam, code,
			"error", err,
		)
	}
	if len(idx) == 0 {
		return code
	}
	if _, ok := idx[code]; ok {
		return code
	}
	return s.defaultTeam
}

// DisplayName returns the full team name: the canonical list first, then the
// registry, then the code itself.
func (s *Service) DisplayName(ctx context.Context, code string) string {
	if name, ok := domainteams.CanonicalName(code); ok {
		return name
	}
	idx, _ := s.Registry(ctx)
	if name, ok := idx[code]; ok {
		return name
	}
	return code
}

// Extract builds an index from a standings document. Rows whose abbreviation
// is not three capital letters are skipped.
func Extract(doc payload.Object) Index {
	idx := Index{}
	for _, row := range appstandings.Rows(doc) {
		code := appstandings.TeamAbbrev(row)
		if !codePattern.MatchString(code) {
			continue
		}
		name := appstandings.TeamName(row)
		if name == "" {
			name = code
		}
		idx[code] = name
	}
	return idx
}

// Teams lists the index as domain teams ordered by code.
func (idx Index) Teams() []domainteams.Team {
	out := make([]domainteams.Team, 0, len(idx))
	for code, name := range idx {
		out = append(out, domainteams.Team{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
