package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// IPStore keeps one token bucket per client identifier. Idle buckets expire from the
// in-memory cache so the store does not grow without bound.
// It satisfies echo's middleware.RateLimiterStore.
type IPStore struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
	expireIn time.Duration
}

// NewIPStore allows requestsPerMinute requests per identifier with the given burst.
func NewIPStore(requestsPerMinute, burst int, expireIn time.Duration) *IPStore {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	if expireIn <= 0 {
		expireIn = 3 * time.Minute
	}

	return &IPStore{
		limiters: cache.New(expireIn, 2*expireIn),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		expireIn: expireIn,
	}
}

// Allow reports whether the identifier may make another request now.
func (s *IPStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var limiter *rate.Limiter
	if v, found := s.limiters.Get(identifier); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(s.limit, s.burst)
	}
	// re-set on every hit so the expiry slides with activity
	s.limiters.Set(identifier, limiter, s.expireIn)

	return limiter.Allow(), nil
}

// Len returns how many identifiers are currently tracked.
func (s *IPStore) Len() int {
	return s.limiters.ItemCount()
}
