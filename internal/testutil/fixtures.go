package testutil

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

// MustObject decodes raw JSON into a payload.Object with numbers preserved, panicking on error.
func MustObject(raw string) payload.Object {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var obj payload.Object
	if err := dec.Decode(&obj); err != nil {
		panic(err)
	}
	return obj
}

// Team builds a schedule team node with an abbreviation and place name.
func Team(abbrev, place string) payload.Object {
	return payload.Object{
		"abbrev":    abbrev,
		"placeName": map[string]any{"default": place},
	}
}

// ScoredTeam is Team with a score attached.
func ScoredTeam(abbrev, place string, score int) payload.Object {
	t := Team(abbrev, place)
	t["score"] = json.Number(itoa(score))
	return t
}

// ScheduleGame builds a schedule entry starting at start (UTC, trailing Z).
func ScheduleGame(id int, start time.Time, home, away payload.Object, state string) payload.Object {
	return payload.Object{
		"id":           json.Number(itoa(id)),
		"startTimeUTC": start.UTC().Format("2006-01-02T15:04:05Z"),
		"gameState":    state,
		"homeTeam":     home,
		"awayTeam":     away,
	}
}

// Schedule wraps entries in a {"games": [...]} payload.
func Schedule(games ...payload.Object) payload.Object {
	list := make([]any, 0, len(games))
	for _, g := range games {
		list = append(list, g)
	}
	return payload.Object{"games": list}
}

// StandingsRow builds one standings row.
func StandingsRow(abbr, name, division string, points int, pct float64, regWins int) payload.Object {
	return payload.Object{
		"teamAbbrev":     map[string]any{"default": abbr},
		"teamName":       map[string]any{"default": name},
		"divisionName":   division,
		"points":         json.Number(itoa(points)),
		"pointsPct":      json.Number(ftoa(pct)),
		"regulationWins": json.Number(itoa(regWins)),
	}
}

// Standings wraps rows in a {"standings": [...]} payload.
func Standings(rows ...payload.Object) payload.Object {
	list := make([]any, 0, len(rows))
	for _, r := range rows {
		list = append(list, r)
	}
	return payload.Object{"standings": list}
}

// TVSchedule builds a tv-schedule payload with one broadcast node for gameID.
func TVSchedule(date string, gameID int, networks ...string) payload.Object {
	broadcasts := make([]any, 0, len(networks))
	for _, n := range networks {
		broadcasts = append(broadcasts, map[string]any{"network": n})
	}
	return payload.Object{
		"date": date,
		"broadcasts": []any{
			map[string]any{"gameId": json.Number(itoa(gameID)), "broadcasts": broadcasts},
		},
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
