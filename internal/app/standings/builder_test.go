package standings

import (
	"encoding/json"
	"testing"

	domainstandings "github.com/preston-bernstein/nhl-ticker-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/testutil"
)

func abbrs(rows []domainstandings.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Abbr)
	}
	return out
}

func TestBuildSortsAndFilters(t *testing.T) {
	doc := testutil.Standings(
		testutil.StandingsRow("COL", "Colorado Avalanche", "Central", 90, 0.6, 38),
		testutil.StandingsRow("DAL", "Dallas Stars", "Central", 95, 0.62, 40),
		testutil.StandingsRow("VGK", "Vegas Golden Knights", "Pacific", 99, 0.7, 44),
		testutil.StandingsRow("MIN", "Minnesota Wild", "Central", 90, 0.6, 39),
		testutil.StandingsRow("WPG", "Winnipeg Jets", "Central", 90, 0.61, 30),
	)

	got := abbrs(Build(doc, " central "))
	want := []string{"DAL", "WPG", "MIN", "COL"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestBuildBlankDivisionKeepsAll(t *testing.T) {
	doc := testutil.Standings(
		testutil.StandingsRow("COL", "Colorado Avalanche", "Central", 90, 0.6, 38),
		testutil.StandingsRow("VGK", "Vegas Golden Knights", "Pacific", 99, 0.7, 44),
	)
	if got := Build(doc, "  "); len(got) != 2 || got[0].Abbr != "VGK" {
		t.Fatalf("expected every row sorted, got %v", abbrs(got))
	}
}

func TestBuildMatchesDivisionAbbrev(t *testing.T) {
	row := testutil.StandingsRow("EDM", "Edmonton Oilers", "Pacific", 80, 0.55, 30)
	row["divisionAbbrev"] = "P"
	doc := testutil.Standings(row)

	if got := Build(doc, "p"); len(got) != 1 {
		t.Fatalf("expected abbreviation match, got %v", got)
	}
	if got := Build(doc, "Pac"); len(got) != 0 {
		t.Fatalf("expected no partial match, got %v", got)
	}
}

func TestBuildStableOnTies(t *testing.T) {
	doc := testutil.Standings(
		testutil.StandingsRow("CHI", "Chicago Blackhawks", "Central", 50, 0.4, 20),
		testutil.StandingsRow("NSH", "Nashville Predators", "Central", 50, 0.4, 20),
		testutil.StandingsRow("STL", "St. Louis Blues", "Central", 50, 0.4, 20),
	)
	got := abbrs(Build(doc, "Central"))
	if got[0] != "CHI" || got[1] != "NSH" || got[2] != "STL" {
		t.Fatalf("expected payload order on full ties, got %v", got)
	}
}

func TestBuildMissingPctSortsLast(t *testing.T) {
	withPct := testutil.StandingsRow("MIN", "Minnesota Wild", "Central", 60, 0.1, 1)
	withoutPct := testutil.StandingsRow("DAL", "Dallas Stars", "Central", 60, 0, 50)
	delete(withoutPct, "pointsPct")

	got := Build(testutil.Standings(withoutPct, withPct), "Central")
	if got[0].Abbr != "MIN" || got[1].PointsPct != domainstandings.MissingPct {
		t.Fatalf("expected missing pct to rank below, got %+v", got)
	}
}

func TestBuildHandlesMalformedPayload(t *testing.T) {
	if got := Build(payload.Object{"standings": "nope"}, ""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil rows, got %#v", got)
	}
	if got := Build(nil, "Central"); len(got) != 0 {
		t.Fatalf("expected no rows, got %v", got)
	}
}

func TestNormalizeRowFieldFallbacks(t *testing.T) {
	raw := testutil.MustObject(`{
		"teamAbbrev": "MIN",
		"teamCommonName": {"default": "Wild"},
		"gamesPlayed": 20,
		"wins": 12,
		"losses": 6,
		"overtimeLosses": 2,
		"points": 26,
		"pointPctg": 0.65,
		"regWins": 10,
		"row": 11,
		"gf": 70,
		"goalsAgainst": 50,
		"streakCode": "W",
		"streakCount": 3,
		"homeWins": 7,
		"homeLosses": 2,
		"homeOTLosses": 1,
		"awayWins": 5,
		"roadLosses": 4,
		"awayOTLosses": 1
	}`)

	r := NormalizeRow(raw)
	want := domainstandings.Row{
		Team:               "Wild",
		Abbr:               "MIN",
		GamesPlayed:        20,
		Wins:               12,
		Losses:             6,
		OTLosses:           2,
		Points:             26,
		PointsPct:          0.65,
		RegulationWins:     10,
		RegulationOrOTWins: 11,
		Streak:             "W3",
		GoalDiff:           20,
		GoalsFor:           70,
		GoalsAgainst:       50,
		HomeRecord:         "7-2-1",
		AwayRecord:         "5-4-1",
	}
	if r != want {
		t.Fatalf("unexpected row\n got %+v\nwant %+v", r, want)
	}
}

func TestNormalizeRowDefaults(t *testing.T) {
	r := NormalizeRow(payload.Object{
		"goalDifferential": json.Number("-4"),
		"pointsPct":        "n/a",
		"streak":           "L",
	})
	if r.Team != "TBD" || r.Abbr != "" {
		t.Fatalf("expected unknown team, got %q %q", r.Team, r.Abbr)
	}
	if r.PointsPct != domainstandings.MissingPct || r.GoalDiff != -4 || r.Streak != "L" {
		t.Fatalf("unexpected defaults %+v", r)
	}
	if r.HomeRecord != "" || r.AwayRecord != "" {
		t.Fatalf("expected empty records, got %q %q", r.HomeRecord, r.AwayRecord)
	}
}

func TestTeamAbbrevShapes(t *testing.T) {
	if got := TeamAbbrev(payload.Object{"teamAbbrev": " COL "}); got != "COL" {
		t.Fatalf("expected plain string, got %q", got)
	}
	if got := TeamAbbrev(payload.Object{"teamAbbrev": map[string]any{"default": "COL"}}); got != "COL" {
		t.Fatalf("expected default field, got %q", got)
	}
	if got := TeamAbbrev(payload.Object{"teamAbbrev": json.Number("1")}); got != "" {
		t.Fatalf("expected empty for mistyped abbrev, got %q", got)
	}
}
