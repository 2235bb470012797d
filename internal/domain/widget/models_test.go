package widget

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
)

func TestNewResponseOmitsUnrequestedSections(t *testing.T) {
	vm := ViewModel{
		Now:      time.Date(2024, 10, 12, 12, 0, 0, 0, time.UTC),
		Upcoming: []games.Game{{Opponent: "Dallas"}},
	}

	data, err := json.Marshal(NewResponse(vm, "MIN", "Minnesota Wild", Sections{Upcoming: true}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"sport":"hockey"`) || !strings.Contains(out, `"upcoming":[`) {
		t.Fatalf("expected header and upcoming, got %s", out)
	}
	for _, key := range []string{`"recent"`, `"standings"`, `"division"`, `"errors"`} {
		if strings.Contains(out, key) {
			t.Fatalf("expected %s to be omitted, got %s", key, out)
		}
	}
}

func TestNewResponseKeepsEmptyListsAndStandingsStamp(t *testing.T) {
	stamp := time.Date(2024, 10, 12, 12, 0, 0, 0, time.UTC)
	vm := ViewModel{
		Now:                  stamp,
		IncludeStandings:     true,
		Division:             "Central",
		StandingsGeneratedAt: stamp,
		Errors:               map[string]string{SectionGames: "upstream unavailable"},
	}

	resp := NewResponse(vm, "MIN", "Minnesota Wild", Sections{Upcoming: true, Recent: true, Standings: true})
	data, _ := json.Marshal(resp)
	out := string(data)

	for _, want := range []string{`"upcoming":[]`, `"recent":[]`, `"standings":[]`, `"highlightTeam":"MIN"`, `"division":"Central"`, `"standingsGeneratedAt":"2024-10-12T12:00:00Z"`, `"errors":{"games":"upstream unavailable"}`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
	if !vm.Degraded() {
		t.Fatal("expected degraded view model")
	}
}

func TestNewResponseNullStandingsStampWhenUnset(t *testing.T) {
	resp := NewResponse(ViewModel{}, "MIN", "Minnesota Wild", Sections{Standings: true})
	data, _ := json.Marshal(resp)
	if !strings.Contains(string(data), `"standingsGeneratedAt":null`) {
		t.Fatalf("expected null stamp, got %s", data)
	}
}
