package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
	"github.com/preston-bernstein/nhl-ticker-service/internal/metrics"
	"github.com/preston-bernstein/nhl-ticker-service/internal/payload"
)

// instrumentedUpstream records every call per endpoint and logs failures.
// It never retries; errors are returned to the caller unchanged.
type instrumentedUpstream struct {
	inner   Upstream
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumented wraps inner with attempt/latency/error recording.
// A nil inner yields an Upstream that fails every call with ErrUnavailable.
func NewInstrumented(inner Upstream, name string, logger *slog.Logger, recorder *metrics.Recorder) Upstream {
	if name == "" {
		name = "upstream"
	}
	return &instrumentedUpstream{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (u *instrumentedUpstream) TeamSchedule(ctx context.Context, team string) (payload.Object, error) {
	return u.call(ctx, EndpointSchedule, func() (payload.Object, error) {
		return u.inner.TeamSchedule(ctx, team)
	}, slog.String(logging.FieldTeam, team))
}

func (u *instrumentedUpstream) TVSchedule(ctx context.Context, date string) (payload.Object, error) {
	return u.call(ctx, EndpointTV, func() (payload.Object, error) {
		return u.inner.TVSchedule(ctx, date)
	}, slog.String(logging.FieldDate, date))
}

func (u *instrumentedUpstream) Standings(ctx context.Context) (payload.Object, error) {
	return u.call(ctx, EndpointStandings, func() (payload.Object, error) {
		return u.inner.Standings(ctx)
	})
}

func (u *instrumentedUpstream) call(ctx context.Context, endpoint string, fetch func() (payload.Object, error), attrs ...any) (payload.Object, error) {
	if u.inner == nil {
		u.metrics.RecordUpstreamAttempt(endpoint, 0, ErrUnavailable)
		return nil, ErrUnavailable
	}

	start := u.now()
	doc, err := fetch()
	elapsed := u.now().Sub(start)
	u.metrics.RecordUpstreamAttempt(endpoint, elapsed, err)

	args := append([]any{
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	}, attrs...)

	if err != nil {
		if statusErr, ok := AsStatusError(err); ok {
			args = append(args, slog.Int(logging.FieldStatusCode, statusErr.StatusCode))
		}
		args = append(args, slog.Any("error", err))
		logWithUpstream(ctx, u.logger, slog.LevelWarn, u.name, "upstream fetch failed", args...)
		return nil, err
	}

	logWithUpstream(ctx, u.logger, slog.LevelDebug, u.name, "upstream fetch complete", args...)
	return doc, nil
}
