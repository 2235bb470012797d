package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/metrics"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
	"github.com/preston-bernstein/nhl-ticker-service/internal/testutil"
)

func TestStubUpstreamImplementsInterface(t *testing.T) {
	var _ Upstream = (*testutil.StubUpstream)(nil)
}

func TestInstrumentedRecordsAttemptsPerEndpoint(t *testing.T) {
	stub := &testutil.StubUpstream{
		ScheduleDoc:  payload.Object{"games": []any{}},
		StandingsErr: &StatusError{Endpoint: EndpointStandings, StatusCode: 502},
	}
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	up := NewInstrumented(stub, "nhle", logger, rec)

	if _, err := up.TeamSchedule(context.Background(), "MIN"); err != nil {
		t.Fatalf("unexpected schedule error %v", err)
	}
	if _, err := up.Standings(context.Background()); err == nil {
		t.Fatal("expected standings error to propagate")
	}

	if got := rec.Snapshot(EndpointSchedule); got.Calls != 1 || got.Errors != 0 {
		t.Fatalf("unexpected schedule stats %+v", got)
	}
	if got := rec.Snapshot(EndpointStandings); got.Calls != 1 || got.Errors != 1 {
		t.Fatalf("unexpected standings stats %+v", got)
	}
	if stub.Calls(EndpointStandings) != 1 {
		t.Fatalf("expected a single standings call without retry, got %d", stub.Calls(EndpointStandings))
	}

	out := buf.String()
	if !strings.Contains(out, "upstream fetch failed") || !strings.Contains(out, "status_code=502") || !strings.Contains(out, "upstream=nhle") {
		t.Fatalf("expected failure log with status, got %s", out)
	}
}

func TestInstrumentedUsesContextLogger(t *testing.T) {
	stub := &testutil.StubUpstream{TVErr: errors.New("dial tcp: refused")}
	var scoped bytes.Buffer
	ctxLogger := slog.New(slog.NewTextHandler(&scoped, nil))
	ctx := contextWithLogger(ctxLogger)

	up := NewInstrumented(stub, "", nil, nil)
	if _, err := up.TVSchedule(ctx, "2024-10-12"); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(scoped.String(), "date=2024-10-12") {
		t.Fatalf("expected request-scoped log, got %s", scoped.String())
	}
}

func TestInstrumentedNilInner(t *testing.T) {
	rec := metrics.NewRecorder()
	up := NewInstrumented(nil, "x", nil, rec)

	if _, err := up.Standings(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if rec.UpstreamErrors(EndpointStandings) != 1 {
		t.Fatalf("expected error to be recorded, got %d", rec.UpstreamErrors(EndpointStandings))
	}
}

func TestInstrumentedMeasuresLatency(t *testing.T) {
	clock := testutil.NewManualClock(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	stub := &testutil.StubUpstream{OnCall: func(string) { clock.Advance(250 * time.Millisecond) }}
	rec := metrics.NewRecorder()
	up := NewInstrumented(stub, "nhle", nil, rec).(*instrumentedUpstream)
	up.now = clock.Now

	_, _ = up.TeamSchedule(context.Background(), "MIN")
	if got := rec.Snapshot(EndpointSchedule).LastCallLatency; got != 250*time.Millisecond {
		t.Fatalf("expected 250ms latency, got %s", got)
	}
}
