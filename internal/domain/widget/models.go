package widget

import (
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
)

// Section names used as keys in ViewModel.Errors.
const (
	SectionGames     = "games"
	SectionStandings = "standings"
)

// Sport is the fixed sport label in API responses.
const Sport = "hockey"

// ViewModel is everything one widget render needs.
type ViewModel struct {
	Now      time.Time
	Upcoming []games.Game
	Recent   []games.Game
	// IncludeStandings is set when standings were requested, even if loading them failed.
	IncludeStandings     bool
	Division             string
	Standings            []standings.Row
	StandingsGeneratedAt time.Time
	// Errors maps a failed section to a short message; nil when nothing degraded.
	Errors map[string]string
}

// Degraded reports whether any section failed to load.
func (vm ViewModel) Degraded() bool {
	return len(vm.Errors) > 0
}

// Sections selects which lists a response carries.
type Sections struct {
	Upcoming  bool
	Recent    bool
	Standings bool
}

// Response is the JSON document served by the API routes.
// Nil sections are omitted from the output.
type Response struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Sport       string    `json:"sport"`
	Team        string    `json:"team"`
	TeamName    string    `json:"teamName"`
	*UpcomingSection
	*RecentSection
	*StandingsSection
	Errors map[string]string `json:"errors,omitempty"`
}

type UpcomingSection struct {
	Upcoming []games.Game `json:"upcoming"`
}

type RecentSection struct {
	Recent []games.Game `json:"recent"`
}

type StandingsSection struct {
	Division             string          `json:"division"`
	StandingsGeneratedAt *time.Time      `json:"standingsGeneratedAt"`
	Standings            []standings.Row `json:"standings"`
	HighlightTeam        string          `json:"highlightTeam"`
}

// NewResponse shapes a view model for JSON output. Lists are never null.
func NewResponse(vm ViewModel, team, teamName string, sections Sections) Response {
	resp := Response{
		GeneratedAt: vm.Now,
		Sport:       Sport,
		Team:        team,
		TeamName:    teamName,
		Errors:      vm.Errors,
	}
	if sections.Upcoming {
		resp.UpcomingSection = &UpcomingSection{Upcoming: nonNilGames(vm.Upcoming)}
	}
	if sections.Recent {
		resp.RecentSection = &RecentSection{Recent: nonNilGames(vm.Recent)}
	}
	if sections.Standings {
		section := &StandingsSection{
			Division:      vm.Division,
			Standings:     vm.Standings,
			HighlightTeam: team,
		}
		if section.Standings == nil {
			section.Standings = []standings.Row{}
		}
		if !vm.StandingsGeneratedAt.IsZero() {
			ts := vm.StandingsGeneratedAt
			section.StandingsGeneratedAt = &ts
		}
		resp.StandingsSection = section
	}
	return resp
}

func nonNilGames(list []games.Game) []games.Game {
	if list == nil {
		return []games.Game{}
	}
	return list
}
