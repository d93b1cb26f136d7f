package limit

import (
	"golang.org/x/time/rate"

	"restaurants/pkg/clock"
)

// RateLimiter is a token bucket shared by the requests of one client
type RateLimiter interface {
	// TryAccept takes a token if one is available right now, it never blocks
	TryAccept() bool
}

// NewStdRateLimiter refills qps tokens per second up to burst
func NewStdRateLimiter(qps float32, burst int, c clock.Clock) RateLimiter {
	return &bucket{limiter: rate.NewLimiter(rate.Limit(qps), burst), clock: c}
}

type bucket struct {
	limiter *rate.Limiter
	clock   clock.Clock
}

func (b *bucket) TryAccept() bool {
	return b.limiter.AllowN(b.clock.Now(), 1)
}
