package services

import (
	"context"
	"time"
)

// simulateLatency blocks for d to mimic a slow external call, the way the
// original demo delays sign-in, listing submission, checkout, and support
// requests. It returns early if the request context is cancelled so an
// abandoned request does not hold the handler.
func simulateLatency(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
