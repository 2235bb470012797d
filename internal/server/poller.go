package server

import (
	"context"

	"github.com/preston-bernstein/nhl-ticker-service/internal/poller"
)

// Poller is the cache warmer behavior the server drives.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
