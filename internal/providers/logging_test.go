package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nhl-ticker-service/internal/logging"
)

func contextWithLogger(logger *slog.Logger) context.Context {
	return logging.WithLogger(context.Background(), logger)
}
