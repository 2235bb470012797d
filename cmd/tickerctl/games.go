package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	domaingames "github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
)

type gamesCmd struct {
	Team     string `help:"Three-letter team code." short:"t" default:"${team}"`
	Upcoming int    `help:"Number of upcoming games." default:"${upcoming}"`
	Recent   int    `help:"Number of recent games." default:"${recent}"`
}

type gamesOutput struct {
	Team     string             `json:"team"`
	TeamName string             `json:"teamName"`
	Upcoming []domaingames.Game `json:"upcoming"`
	Recent   []domaingames.Game `json:"recent"`
}

func (c *gamesCmd) Run(e *env) error {
	team := e.app.Teams.ResolveCode(e.ctx, c.Team)
	res, err := e.app.Games.Games(e.ctx, team, max(c.Upcoming, 0), max(c.Recent, 0))
	if err != nil {
		return err
	}
	out := gamesOutput{
		Team:     team,
		TeamName: e.app.Teams.DisplayName(e.ctx, team),
		Upcoming: nonNil(res.Upcoming),
		Recent:   nonNil(res.Recent),
	}
	if e.json {
		return writeJSON(e.out, out)
	}

	header := table.Row{"Date", "Time", "Opponent", "State", "Score", "Result", "Networks"}
	if c.Upcoming > 0 {
		t := newTable(e.out, fmt.Sprintf("%s: upcoming", out.TeamName), header)
		appendGames(t, out.Upcoming)
		t.Render()
	}
	if c.Recent > 0 {
		t := newTable(e.out, fmt.Sprintf("%s: recent", out.TeamName), header)
		appendGames(t, out.Recent)
		t.Render()
	}
	return nil
}

func appendGames(t table.Writer, list []domaingames.Game) {
	for _, g := range list {
		status := g.Result
		if g.IsLive {
			status = g.LiveLabel
		}
		t.AppendRow(table.Row{
			g.DateDisplay,
			g.TimeDisplay,
			g.HomeAway.Symbol() + " " + g.Opponent,
			g.State,
			g.Score,
			status,
			strings.Join(g.Networks, ", "),
		})
	}
	if len(list) == 0 {
		t.AppendFooter(table.Row{"no games"})
	}
}

func nonNil(list []domaingames.Game) []domaingames.Game {
	if list == nil {
		return []domaingames.Game{}
	}
	return list
}
