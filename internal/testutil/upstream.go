package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

// StubUpstream serves canned documents and counts calls per endpoint
// ("schedule", "tv", "standings").
type StubUpstream struct {
	ScheduleDoc  payload.Object
	ScheduleErr  error
	TVDocs       map[string]payload.Object
	TVErr        error
	StandingsDoc payload.Object
	StandingsErr error
	// OnCall runs before every call with the endpoint name.
	OnCall func(endpoint string)

	mu      sync.Mutex
	calls   map[string]int
	tvDates []string
	teams   []string
}

func (s *StubUpstream) TeamSchedule(ctx context.Context, team string) (payload.Object, error) {
	s.record("schedule")
	s.mu.Lock()
	s.teams = append(s.teams, team)
	s.mu.Unlock()
	if s.ScheduleErr != nil {
		return nil, s.ScheduleErr
	}
	return s.ScheduleDoc, nil
}

func (s *StubUpstream) TVSchedule(ctx context.Context, date string) (payload.Object, error) {
	s.record("tv")
	s.mu.Lock()
	s.tvDates = append(s.tvDates, date)
	s.mu.Unlock()
	if s.TVErr != nil {
		return nil, s.TVErr
	}
	return s.TVDocs[date], nil
}

func (s *StubUpstream) Standings(ctx context.Context) (payload.Object, error) {
	s.record("standings")
	if s.StandingsErr != nil {
		return nil, s.StandingsErr
	}
	return s.StandingsDoc, nil
}

// Calls reports how many times an endpoint was hit.
func (s *StubUpstream) Calls(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

// TVDates returns the dates requested from the TV endpoint, in call order.
func (s *StubUpstream) TVDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.tvDates...)
}

// Teams returns the team codes requested from the schedule endpoint.
func (s *StubUpstream) Teams() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.teams...)
}

func (s *StubUpstream) record(endpoint string) {
	if s.OnCall != nil {
		s.OnCall(endpoint)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[endpoint]++
}
