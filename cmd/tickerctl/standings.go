package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	domainstandings "github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
)

type standingsCmd struct {
	Division string `help:"Division name or abbreviation; defaults to the configured division." short:"d"`
}

type standingsOutput struct {
	Division  string                `json:"division"`
	Standings []domainstandings.Row `json:"standings"`
}

func (c *standingsCmd) Run(e *env) error {
	division := e.app.Widget.EffectiveDivision(c.Division)
	rows, err := e.app.Standings.Division(e.ctx, division)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []domainstandings.Row{}
	}
	if e.json {
		return writeJSON(e.out, standingsOutput{Division: division, Standings: rows})
	}

	t := newTable(e.out, division, table.Row{"Team", "GP", "W", "L", "OTL", "PTS", "P%", "RW", "ROW", "STRK", "DIFF", "HOME", "AWAY"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Abbr, r.GamesPlayed, r.Wins, r.Losses, r.OTLosses, r.Points,
			pct(r.PointsPct), r.RegulationWins, r.RegulationOrOTWins, r.Streak,
			signed(r.GoalDiff), r.HomeRecord, r.AwayRecord,
		})
	}
	t.Render()
	return nil
}

func pct(v float64) string {
	if v == domainstandings.MissingPct {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
