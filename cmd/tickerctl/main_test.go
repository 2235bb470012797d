package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/bootstrap"
	"github.com/preston-bernstein/nhl-ticker-service/internal/testutil"
)

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TZ", "UTC")
	t.Setenv("TEAM_CODE", "MIN")
	t.Setenv("LIMIT_UPCOMING", "2")
	t.Setenv("LIMIT_RECENT", "1")
	t.Setenv("DEFAULT_DIVISION", "Central")
	t.Setenv("NETWORK_CONFIG_FILE", "")
}

func stubUpstream() *testutil.StubUpstream {
	now := time.Now().UTC()
	return &testutil.StubUpstream{
		ScheduleDoc: testutil.Schedule(
			testutil.ScheduleGame(1, now.Add(-72*time.Hour), testutil.ScoredTeam("DAL", "Dallas", 4), testutil.ScoredTeam("MIN", "Minnesota", 2), "OFF"),
			testutil.ScheduleGame(2, now.Add(-24*time.Hour), testutil.ScoredTeam("MIN", "Minnesota", 5), testutil.ScoredTeam("CHI", "Chicago", 1), "FINAL"),
			testutil.ScheduleGame(3, now.Add(48*time.Hour), testutil.Team("MIN", "Minnesota"), testutil.Team("STL", "St. Louis"), "FUT"),
		),
		StandingsDoc: testutil.Standings(
			testutil.StandingsRow("DAL", "Dallas Stars", "Central", 12, 0.75, 5),
			testutil.StandingsRow("MIN", "Minnesota Wild", "Central", 14, 0.7, 6),
			testutil.StandingsRow("VGK", "Vegas Golden Knights", "Pacific", 15, 0.8, 7),
		),
	}
}

func runCLI(t *testing.T, upstream *testutil.StubUpstream, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	exit := func(code int) { t.Fatalf("unexpected exit %d: %s", code, out.String()) }
	err := run(context.Background(), args, &out, exit, bootstrap.WithUpstream(upstream))
	return out.String(), err
}

func TestGamesJSON(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "--json", "games", "--team", "dal", "--recent", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Team     string `json:"team"`
		TeamName string `json:"teamName"`
		Upcoming []struct {
			Opponent string `json:"opponent"`
		} `json:"upcoming"`
		Recent []struct {
			Opponent string `json:"opponent"`
			Result   string `json:"result"`
		} `json:"recent"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if doc.Team != "DAL" || doc.TeamName != "Dallas Stars" {
		t.Fatalf("unexpected team %+v", doc)
	}
	// The stub serves one schedule for every team, so games without DAL fall back to the away side.
	if len(doc.Upcoming) != 1 || len(doc.Recent) != 2 {
		t.Fatalf("expected configured upcoming limit and explicit recent limit, got %+v", doc)
	}
	if doc.Recent[1].Opponent != "Minnesota" || doc.Recent[1].Result != "W" {
		t.Fatalf("expected win over Minnesota, got %+v", doc.Recent[1])
	}
}

func TestGamesTable(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "games")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Minnesota Wild: upcoming", "Minnesota Wild: recent", "vs St. Louis", "vs Chicago", "5 – 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "@ Dallas") {
		t.Fatalf("expected recent limit of 1 from env to drop the older game:\n%s", out)
	}
}

func TestStandingsTable(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "standings")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	minIdx, dalIdx := strings.Index(out, "MIN"), strings.Index(out, "DAL")
	if minIdx < 0 || dalIdx < 0 || minIdx > dalIdx {
		t.Fatalf("expected MIN ranked above DAL:\n%s", out)
	}
	if strings.Contains(out, "VGK") {
		t.Fatalf("expected other divisions filtered:\n%s", out)
	}
	if !strings.Contains(out, "0.700") {
		t.Fatalf("expected points percentage column:\n%s", out)
	}
}

func TestStandingsJSONWithDivision(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "--json", "standings", "--division", " pacific ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc struct {
		Division  string `json:"division"`
		Standings []struct {
			Abbr string `json:"abbr"`
		} `json:"standings"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.Division != "pacific" || len(doc.Standings) != 1 || doc.Standings[0].Abbr != "VGK" {
		t.Fatalf("unexpected standings %+v", doc)
	}
}

func TestStandingsUpstreamError(t *testing.T) {
	setEnv(t)
	upstream := stubUpstream()
	upstream.StandingsErr = errors.New("upstream returned 503")

	if _, err := runCLI(t, upstream, "standings"); err == nil {
		t.Fatalf("expected upstream error to surface")
	}
}

func TestNetworksPreview(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "--json", "networks", "--raw", "FDSNX,NHLN", "--raw", "ESPN Select")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc networksOutput
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(doc.Input) != 3 {
		t.Fatalf("expected three inputs, got %v", doc.Input)
	}
	if strings.Join(doc.Resolved, "|") != "ESPN+|FanDuel Sports North" {
		t.Fatalf("unexpected resolution %v", doc.Resolved)
	}
}

func TestNetworksTable(t *testing.T) {
	setEnv(t)
	out, err := runCLI(t, stubUpstream(), "networks", "--raw", "TNT,NHLN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "NHLN") || !strings.Contains(out, "yes") {
		t.Fatalf("expected both rows with TNT kept:\n%s", out)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	setEnv(t)
	var out bytes.Buffer
	err := run(context.Background(), []string{"scores"}, &out, func(int) {}, bootstrap.WithUpstream(stubUpstream()))
	if err == nil {
		t.Fatalf("expected parse error for unknown command")
	}
}
