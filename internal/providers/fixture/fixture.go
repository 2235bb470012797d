package fixture

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

const firstGameID = 2024020001

// Upstream returns deterministic documents for local runs and demos.
// Schedules are laid out around the current time so every widget section has content.
type Upstream struct {
	now func() time.Time
}

// New creates a fixture upstream with a time source.
func New() *Upstream {
	return &Upstream{
		now: time.Now,
	}
}

type slot struct {
	offset    time.Duration
	opponent  string
	place     string
	home      bool
	state     string
	own, opp  int
	networks  []string
	liveClock string
}

var slots = []slot{
	{offset: -72 * time.Hour, opponent: "DAL", place: "Dallas", home: true, state: "OFF", own: 3, opp: 2},
	{offset: -48 * time.Hour, opponent: "COL", place: "Colorado", home: false, state: "FINAL", own: 1, opp: 4},
	{offset: -time.Hour, opponent: "WPG", place: "Winnipeg", home: true, state: "LIVE", own: 2, opp: 2, networks: []string{"FDSNNO"}, liveClock: "08:41"},
	{offset: 24 * time.Hour, opponent: "CHI", place: "Chicago", home: false, state: "FUT", networks: []string{"TNT", "FDSNWI"}},
	{offset: 72 * time.Hour, opponent: "STL", place: "St. Louis", home: true, state: "FUT"},
	{offset: 120 * time.Hour, opponent: "NSH", place: "Nashville", home: false, state: "PRE"},
}

// TeamSchedule returns a schedule of past, live and upcoming games for team.
func (u *Upstream) TeamSchedule(ctx context.Context, team string) (payload.Object, error) {
	_ = ctx
	team = strings.ToUpper(strings.TrimSpace(team))
	start := u.now().UTC().Truncate(time.Hour)

	games := make([]any, 0, len(slots))
	for i, s := range slots {
		games = append(games, s.game(firstGameID+i, start, team))
	}
	return payload.Object{
		"clubTimezone": "America/Chicago",
		"games":        games,
	}, nil
}

// TVSchedule lists broadcasts for fixture games that carry none on the schedule.
func (u *Upstream) TVSchedule(ctx context.Context, date string) (payload.Object, error) {
	_ = ctx
	nodes := make([]any, 0, len(slots))
	for i, s := range slots {
		if len(s.networks) > 0 || s.state == "FINAL" || s.state == "OFF" {
			continue
		}
		nodes = append(nodes, map[string]any{
			"gameId": number(firstGameID + i),
			"broadcasts": []any{
				map[string]any{"network": "ESPN+"},
				map[string]any{"callSign": "FDSNNO"},
			},
		})
	}
	return payload.Object{
		"date":      date,
		"broadcast": nodes,
	}, nil
}

// Standings returns a small league table covering two divisions.
func (u *Upstream) Standings(ctx context.Context) (payload.Object, error) {
	_ = ctx
	rows := make([]any, 0, len(table))
	for _, r := range table {
		rows = append(rows, r.row())
	}
	return payload.Object{
		"wildCardIndicator":    true,
		"standingsDateTimeUtc": u.now().UTC().Format(time.RFC3339),
		"standings":            rows,
	}, nil
}

func (s slot) game(id int, start time.Time, team string) map[string]any {
	own := map[string]any{"abbrev": team, "placeName": map[string]any{"default": team}}
	other := map[string]any{"abbrev": s.opponent, "placeName": map[string]any{"default": s.place}}
	if s.state != "FUT" && s.state != "PRE" {
		own["score"] = number(s.own)
		other["score"] = number(s.opp)
	}

	g := map[string]any{
		"id":           number(id),
		"startTimeUTC": start.Add(s.offset).Format("2006-01-02T15:04:05Z"),
		"gameState":    s.state,
	}
	if s.home {
		g["homeTeam"], g["awayTeam"] = own, other
	} else {
		g["homeTeam"], g["awayTeam"] = other, own
	}
	if len(s.networks) > 0 {
		broadcasts := make([]any, 0, len(s.networks))
		for _, n := range s.networks {
			broadcasts = append(broadcasts, map[string]any{"network": n, "market": "N"})
		}
		g["tvBroadcasts"] = broadcasts
	}
	if s.liveClock != "" {
		g["periodDescriptor"] = map[string]any{"number": number(2), "periodType": "REG"}
		g["clock"] = map[string]any{"timeRemaining": s.liveClock, "inIntermission": false}
	}
	return g
}

type standing struct {
	abbr, name, division, divAbbr string
	wins, losses, ot, regWins     int
	gf, ga                        int
}

var table = []standing{
	{"WPG", "Winnipeg Jets", "Central", "C", 52, 22, 8, 44, 275, 199},
	{"DAL", "Dallas Stars", "Central", "C", 50, 26, 6, 42, 278, 225},
	{"COL", "Colorado Avalanche", "Central", "C", 49, 29, 4, 39, 274, 219},
	{"MIN", "Minnesota Wild", "Central", "C", 45, 30, 7, 35, 228, 239},
	{"STL", "St. Louis Blues", "Central", "C", 44, 30, 8, 33, 255, 235},
	{"UTA", "Utah Hockey Club", "Central", "C", 38, 31, 13, 30, 241, 251},
	{"NSH", "Nashville Predators", "Central", "C", 30, 44, 8, 24, 212, 272},
	{"CHI", "Chicago Blackhawks", "Central", "C", 25, 46, 11, 19, 225, 296},
	{"VGK", "Vegas Golden Knights", "Pacific", "P", 50, 22, 10, 41, 275, 219},
	{"LAK", "Los Angeles Kings", "Pacific", "P", 48, 25, 9, 40, 250, 206},
	{"EDM", "Edmonton Oilers", "Pacific", "P", 48, 29, 5, 36, 263, 245},
}

func (s standing) row() map[string]any {
	gp := s.wins + s.losses + s.ot
	points := 2*s.wins + s.ot
	pct := float64(points) / float64(2*gp)
	return map[string]any{
		"teamAbbrev":           map[string]any{"default": s.abbr},
		"teamName":             map[string]any{"default": s.name},
		"divisionName":         s.division,
		"divisionAbbrev":       s.divAbbr,
		"gamesPlayed":          number(gp),
		"wins":                 number(s.wins),
		"losses":               number(s.losses),
		"otLosses":             number(s.ot),
		"points":               number(points),
		"pointPctg":            json.Number(strconv.FormatFloat(pct, 'f', 4, 64)),
		"regulationWins":       number(s.regWins),
		"regulationPlusOtWins": number(s.regWins + 3),
		"goalFor":              number(s.gf),
		"goalAgainst":          number(s.ga),
		"homeWins":             number(s.wins / 2),
		"homeLosses":           number(s.losses / 2),
		"homeOtLosses":         number(s.ot / 2),
		"roadWins":             number(s.wins - s.wins/2),
		"roadLosses":           number(s.losses - s.losses/2),
		"roadOtLosses":         number(s.ot - s.ot/2),
		"streakCode":           "W",
		"streakCount":          number(1 + len(s.abbr)%3),
	}
}

func number(n int) json.Number {
	return json.Number(strconv.Itoa(n))
}
