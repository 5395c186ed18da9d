package api

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"oxide/pkg/logx"
)

// ipRateLimiter keeps one token bucket per client IP. A background loop
// drops buckets that have refilled completely so the map does not grow
// without bound.
type ipRateLimiter struct {
	mu     sync.RWMutex
	limits map[string]*rate.Limiter
	r      rate.Limit
	b      int
}

func newIPRateLimiter(r rate.Limit, b int) *ipRateLimiter {
	l := &ipRateLimiter{
		limits: make(map[string]*rate.Limiter),
		r:      r,
		b:      b,
	}

	go l.cleanup()

	return l
}

func (l *ipRateLimiter) limiterFor(addr string) *rate.Limiter {
	ip, _, err := net.SplitHostPort(addr)
	if err != nil {
		ip = addr
	}

	l.mu.RLock()
	limiter, exists := l.limits[ip]
	l.mu.RUnlock()

	if !exists {
		l.mu.Lock()
		limiter, exists = l.limits[ip]
		if !exists {
			limiter = rate.NewLimiter(l.r, l.b)
			l.limits[ip] = limiter
		}
		l.mu.Unlock()
	}

	return limiter
}

// cleanup removes limiters whose bucket is full again, meaning the IP has
// been idle at least long enough to refill its burst.
func (l *ipRateLimiter) cleanup() {
	ticker := time.NewTicker(3 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		removed := 0
		for ip, limiter := range l.limits {
			if limiter.TokensAt(time.Now()) >= float64(limiter.Burst()) {
				delete(l.limits, ip)
				removed++
			}
		}
		remaining := len(l.limits)
		l.mu.Unlock()

		logx.Debug("rate limiter cleanup", "removed", removed, "remaining", remaining)
	}
}
