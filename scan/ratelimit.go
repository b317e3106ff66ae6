package scan

import (
	"context"

	"github.com/fwojciec/showscout"
	"golang.org/x/time/rate"
)

// Ensure HostLimiter implements showscout.HostLimiter at compile time.
var _ showscout.HostLimiter = (*HostLimiter)(nil)

// HostLimiter throttles classification fetches per host with token
// buckets, one bucket per host and no bursting. Classification is strictly
// sequential, so the limiter is used from a single goroutine.
type HostLimiter struct {
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the limit allows a request to the host, or the context
// is canceled.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	return limiter.Wait(ctx)
}
