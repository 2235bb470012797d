package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

// Endpoint names used in logs and metrics.
const (
	EndpointSchedule  = "schedule"
	EndpointTV        = "tv"
	EndpointStandings = "standings"
)

// Upstream fetches the raw league documents the widget is built from.
// Implementations return the decoded JSON object untouched; shape handling
// is left to the normalizers.
type Upstream interface {
	// TeamSchedule returns the season schedule for a team code, relative to now.
	TeamSchedule(ctx context.Context, team string) (payload.Object, error)
	// TVSchedule returns the broadcast schedule for a YYYY-MM-DD date.
	TVSchedule(ctx context.Context, date string) (payload.Object, error)
	// Standings returns the league standings, relative to now.
	Standings(ctx context.Context) (payload.Object, error)
}
