package games

import "time"

// Side is the configured team's side of the ice for a game.
type Side string

const (
	SideHome Side = "HOME"
	SideAway Side = "AWAY"
)

// Symbol renders the side the way ticker cards show it: "vs" at home, "@" on the road.
func (s Side) Symbol() string {
	if s == SideAway {
		return "@"
	}
	return "vs"
}

// Result codes for completed games.
const (
	ResultWin  = "W"
	ResultLoss = "L"
)

var (
	liveStates = map[string]struct{}{
		"LIVE": {}, "IN_PROGRESS": {}, "INPROGRESS": {}, "ACTIVE": {}, "CRIT": {}, "CRITICAL": {}, "ONGOING": {},
	}
	finalStates = map[string]struct{}{
		"FINAL": {}, "OFF": {}, "COMPLETED": {}, "DONE": {}, "FINISHED": {},
	}
)

// IsLiveState reports whether an upper-cased state token means the game is in progress.
func IsLiveState(state string) bool {
	_, ok := liveStates[state]
	return ok
}

// IsFinalState reports whether an upper-cased state token means the game has ended.
func IsFinalState(state string) bool {
	_, ok := finalStates[state]
	return ok
}

// Game is one schedule entry as seen from the configured team.
// Values are built once per request and never mutated.
type Game struct {
	When        time.Time `json:"when"`
	DateDisplay string    `json:"dateDisplay"`
	TimeDisplay string    `json:"timeDisplay"`
	Opponent    string    `json:"opponent"`
	HomeAway    Side      `json:"homeAway"`
	State       string    `json:"state"`
	IsLive      bool      `json:"isLive"`
	IsFinal     bool      `json:"isFinal"`
	Score       string    `json:"score"`
	LiveLabel   string    `json:"liveLabel"`
	Result      string    `json:"result"`
	GameID      string    `json:"gameId"`
	DateKey     string    `json:"dateKey"`
	Networks    []string  `json:"networks"`
}

// Upcoming reports whether the game starts at or after now.
func (g Game) Upcoming(now time.Time) bool {
	return !g.When.Before(now)
}
