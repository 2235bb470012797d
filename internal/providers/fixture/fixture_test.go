package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

func TestTeamScheduleIsLaidOutAroundNow(t *testing.T) {
	fixed := time.Date(2024, 10, 12, 18, 30, 0, 0, time.UTC)
	u := New()
	u.now = func() time.Time { return fixed }

	doc, err := u.TeamSchedule(context.Background(), "min")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	games, ok := payload.ListAt(doc, "games")
	if !ok || len(games) != len(slots) {
		t.Fatalf("expected %d games, got %v", len(slots), doc)
	}

	first, _ := payload.AsObject(games[0])
	if got := payload.FirstString(first, "startTimeUTC"); got != "2024-10-09T18:00:00Z" {
		t.Fatalf("unexpected first start %s", got)
	}
	if payload.FirstString(first, "homeTeam.abbrev") != "MIN" {
		t.Fatalf("expected team code to be upper-cased into the home slot, got %v", first["homeTeam"])
	}
	if payload.FirstInt(first, -1, "homeTeam.score") != 3 {
		t.Fatalf("expected final score on past game")
	}

	future, _ := payload.AsObject(games[len(games)-1])
	if _, ok := payload.Get(future, "homeTeam.score"); ok {
		t.Fatal("expected no score on future game")
	}
}

func TestTVScheduleCoversGamesWithoutEmbeddedNetworks(t *testing.T) {
	u := New()
	doc, _ := u.TVSchedule(context.Background(), "2024-10-15")

	nodes, ok := payload.ListAt(doc, "broadcast")
	if !ok || len(nodes) != 2 {
		t.Fatalf("expected two tv nodes, got %v", doc["broadcast"])
	}
	node, _ := payload.AsObject(nodes[0])
	if payload.FirstInt(node, 0, "gameId") != firstGameID+4 {
		t.Fatalf("unexpected game id %v", node["gameId"])
	}
}

func TestStandingsRowsAreComplete(t *testing.T) {
	u := New()
	doc, _ := u.Standings(context.Background())

	rows, ok := payload.ListAt(doc, "standings")
	if !ok || len(rows) != len(table) {
		t.Fatalf("expected %d rows, got %d", len(table), len(rows))
	}
	wpg, _ := payload.AsObject(rows[0])
	if payload.FirstInt(wpg, 0, "points") != 112 || payload.FirstInt(wpg, 0, "gamesPlayed") != 82 {
		t.Fatalf("unexpected derived numbers %v", wpg)
	}
	if pct, ok := payload.FirstFloat(wpg, "pointPctg"); !ok || pct <= 0.68 || pct >= 0.69 {
		t.Fatalf("unexpected pct %v", pct)
	}
}
