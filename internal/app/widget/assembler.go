// Package widget assembles the view model behind every widget and API route.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	appgames "github.com/preston-bernstein/nhl-ticker-service/internal/app/games"
	domaingames "github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
	domainstandings "github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
	domainwidget "github.com/preston-bernstein/nhl-ticker-service/internal/domain/widget"
	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
)

// ErrNoData is returned when every requested section failed to load.
var ErrNoData = errors.New("no widget data available")

// GamesSource produces both game buckets for a team.
type GamesSource interface {
	Games(ctx context.Context, team string, limitUpcoming, limitRecent int) (appgames.Result, error)
}

// StandingsSource produces a division table.
type StandingsSource interface {
	Division(ctx context.Context, division string) ([]domainstandings.Row, error)
}

// Config carries the Assembler's collaborators.
type Config struct {
	Games           GamesSource
	Standings       StandingsSource
	DefaultDivision string
	Location        *time.Location
	Logger          *slog.Logger
	Now             func() time.Time
}

// Request describes one widget render.
type Request struct {
	Team             string
	LimitUpcoming    int
	LimitRecent      int
	IncludeStandings bool
	// Division overrides the configured default when non-blank.
	Division string
}

// Assembler combines games and standings into a ViewModel.
type Assembler struct {
	games           GamesSource
	standings       StandingsSource
	defaultDivision string
	loc             *time.Location
	logger          *slog.Logger
	now             func() time.Time
}

// NewAssembler constructs an Assembler.
func NewAssembler(cfg Config) *Assembler {
	a := &Assembler{
		games:           cfg.Games,
		standings:       cfg.Standings,
		defaultDivision: strings.TrimSpace(cfg.DefaultDivision),
		loc:             cfg.Location,
		logger:          cfg.Logger,
		now:             cfg.Now,
	}
	if a.loc == nil {
		a.loc = time.UTC
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

// EffectiveDivision returns the trimmed requested division, or the default when blank.
func (a *Assembler) EffectiveDivision(requested string) string {
	if d := strings.TrimSpace(requested); d != "" {
		return d
	}
	return a.defaultDivision
}

// Build loads the requested sections concurrently. A failed section is
// recorded in ViewModel.Errors and the rest of the model is still returned;
// an error is returned only when every requested section failed.
func (a *Assembler) Build(ctx context.Context, req Request) (domainwidget.ViewModel, error) {
	now := a.now().In(a.loc)
	limitUpcoming, limitRecent := max(req.LimitUpcoming, 0), max(req.LimitRecent, 0)
	wantGames := limitUpcoming > 0 || limitRecent > 0

	vm := domainwidget.ViewModel{
		Now:              now,
		Upcoming:         []domaingames.Game{},
		Recent:           []domaingames.Game{},
		IncludeStandings: req.IncludeStandings,
	}
	if req.IncludeStandings {
		vm.Division = a.EffectiveDivision(req.Division)
	}

	var (
		gamesRes     appgames.Result
		rows         []domainstandings.Row
		gamesErr     error
		standingsErr error
		g            errgroup.Group
	)
	if wantGames {
		g.Go(func() error {
			gamesRes, gamesErr = a.loadGames(ctx, req.Team, limitUpcoming, limitRecent)
			return nil
		})
	}
	if req.IncludeStandings {
		g.Go(func() error {
			rows, standingsErr = a.loadStandings(ctx, vm.Division)
			return nil
		})
	}
	_ = g.Wait()

	logger := logging.FromContext(ctx, a.logger)
	requested, failed := 0, 0
	var errs []error
	record := func(section string, err error) {
		if vm.Errors == nil {
			vm.Errors = map[string]string{}
		}
		vm.Errors[section] = err.Error()
		errs = append(errs, fmt.Errorf("%s: %w", section, err))
		failed++
		logging.Warn(logger, "widget section failed",
			logging.FieldTeam, req.Team,
			logging.FieldSection, section,
			"error", err,
		)
	}

	if wantGames {
		requested++
		if gamesErr != nil {
			record(domainwidget.SectionGames, gamesErr)
		} else {
			vm.Upcoming = nonNil(gamesRes.Upcoming)
			vm.Recent = nonNil(gamesRes.Recent)
		}
	}
	if req.IncludeStandings {
		requested++
		if standingsErr != nil {
			record(domainwidget.SectionStandings, standingsErr)
		} else {
			vm.Standings = rows
			vm.StandingsGeneratedAt = now
		}
	}

	if requested > 0 && failed == requested {
		return vm, fmt.Errorf("%w: %w", ErrNoData, errors.Join(errs...))
	}
	return vm, nil
}

func (a *Assembler) loadGames(ctx context.Context, team string, limitUpcoming, limitRecent int) (appgames.Result, error) {
	if a.games == nil {
		return appgames.Result{}, errors.New("games source not configured")
	}
	return a.games.Games(ctx, team, limitUpcoming, limitRecent)
}

func (a *Assembler) loadStandings(ctx context.Context, division string) ([]domainstandings.Row, error) {
	if a.standings == nil {
		return nil, errors.New("standings source not configured")
	}
	rows, err := a.standings.Division(ctx, division)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domainstandings.Row{}
	}
	return rows, nil
}

func nonNil(list []domaingames.Game) []domaingames.Game {
	if list == nil {
		return []domaingames.Game{}
	}
	return list
}
