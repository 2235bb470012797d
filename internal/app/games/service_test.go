package games

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/app/networks"
	"github.com/preston-bernstein/nhl-ticker-service/internal/cache"
	"github.com/preston-bernstein/nhl-ticker-service/internal/config"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/providers"
	"github.com/preston-bernstein/nhl-ticker-service/internal/testutil"
)

var serviceNow = time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC)

func seasonSchedule() payload.Object {
	at := func(d time.Duration) time.Time { return serviceNow.Add(d) }
	minnesota := func(score int) payload.Object { return testutil.ScoredTeam("MIN", "Minnesota", score) }

	national := testutil.ScheduleGame(104, at(24*time.Hour), testutil.Team("MIN", "Minnesota"), testutil.Team("CHI", "Chicago"), "FUT")
	national["tvBroadcasts"] = []any{map[string]any{"network": "TNT"}}

	return testutil.Schedule(
		testutil.ScheduleGame(101, at(-48*time.Hour), minnesota(3), testutil.ScoredTeam("DAL", "Dallas", 2), "OFF"),
		testutil.ScheduleGame(106, at(72*time.Hour), testutil.Team("MIN", "Minnesota"), testutil.Team("STL", "St. Louis"), "FUT"),
		national,
		testutil.ScheduleGame(102, at(-24*time.Hour), testutil.ScoredTeam("COL", "Colorado", 4), minnesota(1), "FINAL"),
		testutil.ScheduleGame(103, at(-time.Hour), minnesota(2), testutil.ScoredTeam("WPG", "Winnipeg", 2), "LIVE"),
		testutil.ScheduleGame(105, at(48*time.Hour), testutil.Team("NSH", "Nashville"), testutil.Team("MIN", "Minnesota"), "PRE"),
	)
}

func newTestService(up providers.Upstream, clock func() time.Time) *Service {
	return NewService(Config{
		Upstream:    up,
		Cache:       cache.New(cache.WithClock(clock)),
		Resolver:    networks.NewResolver(config.DefaultNetworkConfig()),
		Location:    time.UTC,
		ScheduleTTL: time.Minute,
		TVTTL:       time.Minute,
		Now:         clock,
	})
}

func TestGamesSplitsSortsAndTruncates(t *testing.T) {
	stub := &testutil.StubUpstream{
		ScheduleDoc: seasonSchedule(),
		TVDocs: map[string]payload.Object{
			"2024-10-12": testutil.TVSchedule("2024-10-12", 105, "FDSNWI", "KSTP"),
		},
	}
	svc := newTestService(stub, testutil.NowAt(serviceNow))

	res, err := svc.Games(context.Background(), "MIN", 2, 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var upcoming, recent []string
	for _, g := range res.Upcoming {
		upcoming = append(upcoming, g.GameID)
	}
	for _, g := range res.Recent {
		recent = append(recent, g.GameID)
	}
	if !reflect.DeepEqual(upcoming, []string{"104", "105"}) {
		t.Fatalf("expected soonest upcoming first, got %v", upcoming)
	}
	if !reflect.DeepEqual(recent, []string{"103", "102"}) {
		t.Fatalf("expected latest recent first, got %v", recent)
	}

	if got := res.Upcoming[0].Networks; !reflect.DeepEqual(got, []string{"TNT"}) {
		t.Fatalf("expected embedded network, got %v", got)
	}
	if got := res.Upcoming[1].Networks; !reflect.DeepEqual(got, []string{"FanDuel Sports North"}) {
		t.Fatalf("expected tv schedule fallback, got %v", got)
	}
	if got := stub.TVDates(); !reflect.DeepEqual(got, []string{"2024-10-12"}) {
		t.Fatalf("expected one tv fetch for the fallback date only, got %v", got)
	}

	live := res.Recent[0]
	if !live.IsLive || live.Score != "2 – 2" || live.Networks == nil || len(live.Networks) != 0 {
		t.Fatalf("unexpected live game %+v", live)
	}
	if res.Recent[1].Result != "L" || res.Recent[1].Score != "1 – 4" {
		t.Fatalf("unexpected final %+v", res.Recent[1])
	}
}

func TestGamesStartingNowAreUpcoming(t *testing.T) {
	stub := &testutil.StubUpstream{ScheduleDoc: testutil.Schedule(
		testutil.ScheduleGame(1, serviceNow, testutil.Team("MIN", "Minnesota"), testutil.Team("DAL", "Dallas"), "PRE"),
	)}
	res, err := newTestService(stub, testutil.NowAt(serviceNow)).Games(context.Background(), "MIN", 5, 5)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(res.Upcoming) != 1 || len(res.Recent) != 0 {
		t.Fatalf("expected game at now to be upcoming, got %d/%d", len(res.Upcoming), len(res.Recent))
	}
}

func TestGamesCachesScheduleAndTV(t *testing.T) {
	stub := &testutil.StubUpstream{
		ScheduleDoc: seasonSchedule(),
		TVDocs:      map[string]payload.Object{"2024-10-12": testutil.TVSchedule("2024-10-12", 105, "TNT")},
	}
	clock := testutil.NewManualClock(serviceNow)
	svc := newTestService(stub, clock.Now)

	for i := 0; i < 3; i++ {
		if _, err := svc.Games(context.Background(), "MIN", 3, 0); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if stub.Calls("schedule") != 1 || stub.Calls("tv") != 1 {
		t.Fatalf("expected one schedule and one tv fetch, got %d and %d", stub.Calls("schedule"), stub.Calls("tv"))
	}

	clock.Advance(time.Minute)
	if _, err := svc.Games(context.Background(), "MIN", 3, 0); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if stub.Calls("schedule") != 2 {
		t.Fatalf("expected reload after ttl, got %d", stub.Calls("schedule"))
	}
}

func TestGamesScheduleKeyedByTeam(t *testing.T) {
	stub := &testutil.StubUpstream{ScheduleDoc: testutil.Schedule()}
	svc := newTestService(stub, testutil.NowAt(serviceNow))

	_, _ = svc.Games(context.Background(), "MIN", 1, 1)
	_, _ = svc.Games(context.Background(), "DAL", 1, 1)
	if got := stub.Teams(); !reflect.DeepEqual(got, []string{"MIN", "DAL"}) {
		t.Fatalf("expected a schedule fetch per team, got %v", got)
	}
}

func TestGamesTVFailureDegrades(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	stub := &testutil.StubUpstream{ScheduleDoc: seasonSchedule(), TVErr: errors.New("tv down")}
	svc := NewService(Config{
		Upstream: stub,
		Location: time.UTC,
		TVTTL:    time.Minute,
		Logger:   logger,
		Now:      testutil.NowAt(serviceNow),
	})

	res, err := svc.Games(context.Background(), "MIN", 3, 0)
	if err != nil {
		t.Fatalf("expected tv failure to degrade, got %v", err)
	}
	for _, g := range res.Upcoming {
		if g.GameID == "104" {
			continue
		}
		if g.Networks == nil || len(g.Networks) != 0 {
			t.Fatalf("expected no networks for %s, got %v", g.GameID, g.Networks)
		}
	}
	if !strings.Contains(buf.String(), "tv schedule unavailable") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
	if stub.Calls("tv") != 2 {
		t.Fatalf("expected one fetch per fallback date, got %d", stub.Calls("tv"))
	}
}

func TestGamesScheduleFailurePropagates(t *testing.T) {
	boom := errors.New("schedule down")
	stub := &testutil.StubUpstream{ScheduleErr: boom}

	_, err := newTestService(stub, testutil.NowAt(serviceNow)).Games(context.Background(), "MIN", 5, 5)
	if !errors.Is(err, boom) {
		t.Fatalf("expected schedule error, got %v", err)
	}
}

func TestGamesZeroAndNegativeLimits(t *testing.T) {
	stub := &testutil.StubUpstream{ScheduleDoc: seasonSchedule()}

	res, err := newTestService(stub, testutil.NowAt(serviceNow)).Games(context.Background(), "MIN", -1, 0)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Upcoming == nil || len(res.Upcoming) != 0 || res.Recent == nil || len(res.Recent) != 0 {
		t.Fatalf("expected empty non-nil buckets, got %#v", res)
	}
	if stub.Calls("tv") != 0 {
		t.Fatalf("expected no tv lookups for an empty upcoming set, got %d", stub.Calls("tv"))
	}
}

func TestGamesWithoutUpstream(t *testing.T) {
	_, err := NewService(Config{}).Games(context.Background(), "MIN", 1, 1)
	if !errors.Is(err, providers.ErrUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}
