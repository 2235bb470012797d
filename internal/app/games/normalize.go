package games

import (
	"fmt"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nhl-ticker-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/timeutil"
)

const unknownTeam = "TBD"

var (
	timestampFields = []string{"startTimeUTC", "startTime", "gameDate"}
	stateFields     = []string{"gameState", "gameScheduleState", "gameStatus", "state"}
	idFields        = []string{"id", "gameId", "gamePK"}
	// Keys whose entries may carry nested games lists, tried when "games" is absent.
	groupedFields = []string{"gameWeek", "weeks", "months", "gamesByMonth", "gamesByDate"}
)

// Normalizer converts raw schedule entries into games seen from one team.
type Normalizer struct {
	team string
	loc  *time.Location
}

// NewNormalizer binds a normalizer to a team code and display zone.
func NewNormalizer(team string, loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{team: strings.ToUpper(strings.TrimSpace(team)), loc: loc}
}

// Normalize builds a Game from one schedule entry. Networks are left empty.
// ok is false when the entry has no usable start time.
func (n Normalizer) Normalize(entry payload.Object) (domaingames.Game, bool) {
	when, ok := n.startTime(entry)
	if !ok {
		return domaingames.Game{}, false
	}

	state := gameState(entry)
	isLive := domaingames.IsLiveState(state)
	isFinal := domaingames.IsFinalState(state)
	opponent, side := n.opponent(entry)

	g := domaingames.Game{
		When:        when,
		DateDisplay: when.Format(timeutil.DayLayout),
		TimeDisplay: when.Format(timeutil.TimeLayout),
		Opponent:    opponent,
		HomeAway:    side,
		State:       state,
		IsLive:      isLive,
		IsFinal:     isFinal,
		Score:       n.scoreLine(entry),
		GameID:      payload.FirstTruthyText(entry, idFields...),
		DateKey:     when.Format(timeutil.DateLayout),
		Networks:    []string{},
	}
	if isLive {
		g.LiveLabel = LiveLabel(entry)
	}
	if isFinal {
		g.Result = n.result(entry)
	}
	return g, true
}

func (n Normalizer) startTime(entry payload.Object) (time.Time, bool) {
	for _, field := range timestampFields {
		v, ok := entry[field]
		if !ok || !payload.Truthy(v) {
			continue
		}
		t, err := timeutil.ParseUpstreamTimestamp(payload.Text(v), n.loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func gameState(entry payload.Object) string {
	return strings.ToUpper(payload.FirstString(entry, stateFields...))
}

func teamAbbrev(team payload.Object) string {
	return payload.FirstString(team, "abbrev", "teamAbbrev")
}

// teamName resolves a display name from a schedule team node.
func teamName(team payload.Object) string {
	if name := payload.FirstString(team, "placeName.default", "name.default", "abbrev", "teamAbbrev"); name != "" {
		return name
	}
	return unknownTeam
}

// opponent picks the other side of the matchup. When neither side matches the
// team code the away team is reported with a home perspective, unless the away
// team is unknown.
func (n Normalizer) opponent(entry payload.Object) (string, domaingames.Side) {
	home := payload.ObjectAt(entry, "homeTeam")
	away := payload.ObjectAt(entry, "awayTeam")

	switch n.orientation(entry) {
	case homeSide:
		return teamName(away), domaingames.SideHome
	case awaySide:
		return teamName(home), domaingames.SideAway
	}
	if name := teamName(away); name != unknownTeam {
		return name, domaingames.SideHome
	}
	return teamName(home), domaingames.SideHome
}

type perspective int

const (
	unknownSide perspective = iota
	homeSide
	awaySide
)

// orientation reports which side of the entry the team code is on.
func (n Normalizer) orientation(entry payload.Object) perspective {
	if n.team == "" {
		return unknownSide
	}
	switch n.team {
	case teamAbbrev(payload.ObjectAt(entry, "homeTeam")):
		return homeSide
	case teamAbbrev(payload.ObjectAt(entry, "awayTeam")):
		return awaySide
	}
	return unknownSide
}

// rawScores reads home and away scores from the team nodes, filling either
// missing side from the flat score object.
func rawScores(entry payload.Object) (any, any, bool) {
	h, hasHome := payload.Get(entry, "homeTeam.score")
	a, hasAway := payload.Get(entry, "awayTeam.score")
	if !hasHome || !hasAway {
		flat := payload.ObjectAt(entry, "score")
		if !hasHome {
			h, hasHome = payload.Get(flat, "home")
		}
		if !hasAway {
			a, hasAway = payload.Get(flat, "away")
		}
	}
	return h, a, hasHome && hasAway
}

func (n Normalizer) scoreLine(entry payload.Object) string {
	h, a, ok := rawScores(entry)
	if !ok {
		return ""
	}
	if n.orientation(entry) == awaySide {
		h, a = a, h
	}
	return fmt.Sprintf("%s – %s", payload.Text(h), payload.Text(a))
}

func (n Normalizer) result(entry payload.Object) string {
	h, a, ok := rawScores(entry)
	if !ok {
		return ""
	}
	hs, okHome := payload.Int(h)
	as, okAway := payload.Int(a)
	if !okHome || !okAway {
		return ""
	}
	own, opp := hs, as
	switch n.orientation(entry) {
	case unknownSide:
		return ""
	case awaySide:
		own, opp = as, hs
	}
	switch {
	case own > opp:
		return domaingames.ResultWin
	case own < opp:
		return domaingames.ResultLoss
	}
	return ""
}

// FlattenSchedule returns the game entries of a schedule payload, reading a
// top-level games list or the games of the first grouped list that has any.
func FlattenSchedule(doc payload.Object) []payload.Object {
	if list, ok := payload.ListAt(doc, "games"); ok {
		return objects(list)
	}
	for _, field := range groupedFields {
		groups, ok := payload.ListAt(doc, field)
		if !ok {
			continue
		}
		var out []payload.Object
		for _, group := range groups {
			obj, ok := payload.AsObject(group)
			if !ok {
				continue
			}
			if list, ok := payload.ListAt(obj, "games"); ok {
				out = append(out, objects(list)...)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func objects(list []any) []payload.Object {
	out := make([]payload.Object, 0, len(list))
	for _, item := range list {
		if obj, ok := payload.AsObject(item); ok {
			out = append(out, obj)
		}
	}
	return out
}
