package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
)

// logWithUpstream emits a log entry using the request logger when present and always includes the upstream name.
func logWithUpstream(ctx context.Context, logger *slog.Logger, level slog.Level, upstream string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldUpstream, upstream))
	logger.Log(ctx, level, msg, args...)
}
