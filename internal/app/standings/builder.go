package standings

import (
	"fmt"
	"sort"
	"strings"

	domainstandings "github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

const unknownTeam = "TBD"

// Rows returns the standings rows of a payload; a missing or mistyped list yields none.
func Rows(doc payload.Object) []payload.Object {
	list, ok := payload.ListAt(doc, "standings")
	if !ok {
		return nil
	}
	out := make([]payload.Object, 0, len(list))
	for _, item := range list {
		if row, ok := payload.AsObject(item); ok {
			out = append(out, row)
		}
	}
	return out
}

// Build normalizes the rows of division, sorted by points, points percentage
// and regulation wins, all descending. Ties keep payload order. A blank
// division keeps every row.
func Build(doc payload.Object, division string) []domainstandings.Row {
	out := []domainstandings.Row{}
	for _, raw := range Rows(doc) {
		if InDivision(raw, division) {
			out = append(out, NormalizeRow(raw))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RanksAbove(out[j]) })
	return out
}

// InDivision matches a row's division name or abbreviation, ignoring case.
func InDivision(raw payload.Object, division string) bool {
	want := strings.ToLower(strings.TrimSpace(division))
	if want == "" {
		return true
	}
	name := strings.ToLower(payload.FirstString(raw, "divisionName"))
	abbr := strings.ToLower(payload.FirstString(raw, "divisionAbbrev"))
	return want == name || want == abbr
}

// NormalizeRow reads one standings row. Missing counters are zero.
func NormalizeRow(raw payload.Object) domainstandings.Row {
	gf := payload.FirstInt(raw, 0, "goalFor", "goalsFor", "gf")
	ga := payload.FirstInt(raw, 0, "goalAgainst", "goalsAgainst", "ga")

	pct, ok := payload.FirstFloat(raw, "pointsPct", "pointPctg")
	if !ok {
		pct = domainstandings.MissingPct
	}

	home := record(
		payload.FirstInt(raw, 0, "homeWins"),
		payload.FirstInt(raw, 0, "homeLosses"),
		payload.FirstInt(raw, 0, "homeOtLosses", "homeOTLosses"),
	)
	away := record(
		payload.FirstInt(raw, 0, "roadWins", "awayWins"),
		payload.FirstInt(raw, 0, "roadLosses", "awayLosses"),
		payload.FirstInt(raw, 0, "roadOtLosses", "awayOtLosses", "awayOTLosses"),
	)

	abbr := TeamAbbrev(raw)
	return domainstandings.Row{
		Team:               rowTeamName(raw, abbr),
		Abbr:               abbr,
		GamesPlayed:        payload.FirstInt(raw, 0, "gamesPlayed"),
		Wins:               payload.FirstInt(raw, 0, "wins"),
		Losses:             payload.FirstInt(raw, 0, "losses"),
		OTLosses:           payload.FirstInt(raw, 0, "otLosses", "overtimeLosses"),
		Points:             payload.FirstInt(raw, 0, "points"),
		PointsPct:          pct,
		RegulationWins:     payload.FirstInt(raw, 0, "regulationWins", "regWins", "rw"),
		RegulationOrOTWins: payload.FirstInt(raw, 0, "regulationPlusOvertimeWins", "regulationPlusOtWins", "row"),
		Streak:             streak(raw),
		GoalDiff:           payload.FirstInt(raw, gf-ga, "goalDifferential", "goalDiff", "diff"),
		GoalsFor:           gf,
		GoalsAgainst:       ga,
		HomeRecord:         home,
		AwayRecord:         away,
	}
}

// TeamAbbrev reads teamAbbrev as a plain string or a {"default": ...} object.
func TeamAbbrev(raw payload.Object) string {
	return payload.FirstString(raw, "teamAbbrev", "teamAbbrev.default")
}

// TeamName reads the localized team name without falling back to the abbreviation.
func TeamName(raw payload.Object) string {
	return payload.FirstString(raw, "teamName.default", "teamCommonName.default")
}

func rowTeamName(raw payload.Object, abbr string) string {
	if name := TeamName(raw); name != "" {
		return name
	}
	if abbr != "" {
		return abbr
	}
	return unknownTeam
}

// streak renders code and count as "W3"; a code without a count is returned alone.
func streak(raw payload.Object) string {
	code := payload.FirstString(raw, "streakCode", "streak")
	if code == "" {
		return ""
	}
	if count, ok := payload.Get(raw, "streakCount"); ok {
		return code + payload.Text(count)
	}
	return code
}

func record(w, l, otl int) string {
	if w == 0 && l == 0 && otl == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d-%d", w, l, otl)
}
