package repokit

import (
	"context"
	"time"

	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/store"
)

// pingTimeout bounds Ready when ctx has no deadline of its own
const pingTimeout = 5 * time.Second

// Ready pings a backend a module is about to migrate or write to.
// A nil backend or a failed ping is reported as Unavailable, naming the backend
func Ready(ctx context.Context, name string, p store.Pinger) error {
	if p == nil {
		return perr.Unavailablef("%s: backend not configured", name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s ping", name)
	}
	return nil
}
