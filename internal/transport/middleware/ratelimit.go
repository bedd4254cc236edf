package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter throttles requests per client IP with one token bucket per
// scope and client. A bucket holds up to the per-minute budget and refills
// continuously.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewRateLimiter starts a limiter that evicts idle buckets every
// cleanupInterval. Stop it on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.evictLoop(cleanupInterval)
	return rl
}

// Stop ends background eviction. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client IP within scope. A
// non-positive budget disables the limit.
func (rl *RateLimiter) Limit(scope string, perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(scope+"|"+clientIP(r), float64(perMinute))
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token from key's bucket. When the bucket is empty it
// reports how long until the next token.
func (rl *RateLimiter) take(key string, capacity float64) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	perSecond := capacity / 60

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, seen: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.seen).Seconds()*perSecond)
	b.seen = now

	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle()
		}
	}
}

func (rl *RateLimiter) evictIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.seen) > bucketIdleTTL {
			delete(rl.buckets, key)
		}
	}
}

// clientIP is the remote host without its port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
