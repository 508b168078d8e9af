package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limits requests per client IP with one token bucket per
// (IP, limit) pair.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	idleTTL  time.Duration
	stop     chan struct{}
	once     sync.Once
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanoseconds
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		idleTTL: 10 * time.Minute,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rate-limits requests to maxPerMinute per IP.
// A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if maxPerMinute <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := rl.visitor(clientIP(r), maxPerMinute)

			res := v.limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) visitor(ip string, maxPerMinute int) *visitor {
	key := ip + "|" + strconv.Itoa(maxPerMinute)

	val, ok := rl.visitors.Load(key)
	if !ok {
		fresh := &visitor{limiter: rate.NewLimiter(rate.Limit(float64(maxPerMinute)/60.0), maxPerMinute)}
		val, _ = rl.visitors.LoadOrStore(key, fresh)
	}
	v := val.(*visitor)
	v.lastSeen.Store(time.Now().UnixNano())
	return v
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.idleTTL).UnixNano()
			rl.visitors.Range(func(key, value any) bool {
				if value.(*visitor).lastSeen.Load() < cutoff {
					rl.visitors.Delete(key)
				}
				return true
			})
		}
	}
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
