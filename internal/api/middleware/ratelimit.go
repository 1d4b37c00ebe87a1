package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/SahanHeshan/GovPortal/internal/api/handlers"
)

const msgTooManyRequests = "too many login attempts, try again later"

// clientLimiter pairs a token bucket with its last activity time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP. Built for the login route:
// credential stuffing is the one place the portal sees hostile traffic.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	perSec  rate.Limit
	burst   int
	maxIdle time.Duration
	logger  AuthLogger
}

// NewRateLimiter creates a per-IP limiter allowing perSec requests with the
// given burst. Idle client buckets are dropped after ten minutes.
func NewRateLimiter(perSec float64, burst int, log AuthLogger) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		perSec:  rate.Limit(perSec),
		burst:   burst,
		maxIdle: 10 * time.Minute,
		logger:  log,
	}
}

// Middleware rejects over-limit requests with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if !rl.allow(ip) {
			rl.logger.Warn("Rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	client, ok := rl.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.perSec, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	// Opportunistic cleanup of idle buckets
	for addr, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.maxIdle {
			delete(rl.clients, addr)
		}
	}

	return client.limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
