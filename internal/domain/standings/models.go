package standings

// MissingPct marks a row without a usable points percentage; it sorts below any real value.
const MissingPct = -1.0

// Row is one team's line in a division table.
type Row struct {
	Team               string  `json:"team"`
	Abbr               string  `json:"abbr"`
	GamesPlayed        int     `json:"gamesPlayed"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	OTLosses           int     `json:"otLosses"`
	Points             int     `json:"points"`
	PointsPct          float64 `json:"pointsPct"`
	RegulationWins     int     `json:"regulationWins"`
	RegulationOrOTWins int     `json:"regulationOrOtWins"`
	Streak             string  `json:"streak"`
	GoalDiff           int     `json:"goalDiff"`
	GoalsFor           int     `json:"goalsFor"`
	GoalsAgainst       int     `json:"goalsAgainst"`
	HomeRecord         string  `json:"homeRecord"`
	AwayRecord         string  `json:"awayRecord"`
}

// RanksAbove reports whether r sorts strictly before other:
// points, then points percentage, then regulation wins, all descending.
func (r Row) RanksAbove(other Row) bool {
	if r.Points != other.Points {
		return r.Points > other.Points
	}
	if r.PointsPct != other.PointsPct {
		return r.PointsPct > other.PointsPct
	}
	return r.RegulationWins > other.RegulationWins
}
