package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/cache"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/reputation"
	"golang.org/x/time/rate"
)

// Limiter implements keyed rate limiting: per domain for outbound fetches,
// per client address for inbound requests. Idle keys are forgotten after
// idleTTL.
type Limiter struct {
	limiters     *cache.Memory[*rate.Limiter]
	mu           sync.RWMutex
	overrides    map[string]rate.Limit
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter. A non-positive rate disables limiting.
func NewLimiter(requestsPerSecond float64, burst int, idleTTL time.Duration) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}

	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		limiters:     cache.NewMemory[*rate.Limiter](idleTTL, idleTTL),
		overrides:    make(map[string]rate.Limit),
		defaultRate:  limit,
		defaultBurst: burst,
	}
}

// Wait blocks until key may proceed or ctx is done
func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.get(key).Wait(ctx)
}

// WaitURL waits on the limiter of the URL's normalized domain
func (l *Limiter) WaitURL(ctx context.Context, rawURL string) error {
	return l.Wait(ctx, reputation.NormalizeDomain(rawURL))
}

// Allow reports whether key may proceed now, consuming a token if so
func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

// SetRate sets a custom rate for one key. Existing limiters for the key are replaced.
func (l *Limiter) SetRate(key string, requestsPerSecond float64) {
	l.mu.Lock()
	l.overrides[key] = rate.Limit(requestsPerSecond)
	l.mu.Unlock()
	l.limiters.Delete(key)
}

// NewDomainLimiter creates the outbound per-domain limiter described by cfg,
// with its per-domain overrides applied.
func NewDomainLimiter(cfg model.RateLimitConfig) *Limiter {
	l := NewLimiter(cfg.RequestsPerSecond, cfg.BurstSize, 10*time.Minute)
	for _, o := range cfg.DomainRates {
		if o.RequestsPerSecond > 0 {
			l.SetRate(reputation.NormalizeDomain(o.Domain), o.RequestsPerSecond)
		}
	}
	return l
}

func (l *Limiter) get(key string) *rate.Limiter {
	limiter := l.limiters.GetOrAdd(key, func() *rate.Limiter {
		l.mu.RLock()
		limit, ok := l.overrides[key]
		l.mu.RUnlock()
		if !ok {
			limit = l.defaultRate
		}
		return rate.NewLimiter(limit, l.defaultBurst)
	})
	l.limiters.Touch(key)
	return limiter
}
