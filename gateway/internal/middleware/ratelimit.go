package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter implements a simple token bucket rate limiter.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter that allows rps requests per second.
func NewRateLimiter(rps int) *RateLimiter {
	return &RateLimiter{
		tokens:     float64(rps),
		maxTokens:  float64(rps),
		refillRate: float64(rps),
		lastRefill: time.Now(),
	}
}

// Allow reports whether a single request is permitted.
// It consumes one token if available.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.refill(now)

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

func (rl *RateLimiter) refill(now time.Time) {
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.tokens += elapsed * rl.refillRate
	if rl.tokens > rl.maxTokens {
		rl.tokens = rl.maxTokens
	}
	rl.lastRefill = now
}

// full reports whether the bucket has refilled completely, meaning the
// client has been idle long enough to be forgotten.
func (rl *RateLimiter) full(now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill(now)
	return rl.tokens >= rl.maxTokens
}

// sweepEvery is how many Allow calls pass between sweeps of idle buckets.
const sweepEvery = 1024

// PerClientRateLimiter keeps one token bucket per client key.
type PerClientRateLimiter struct {
	mu      sync.Mutex
	rps     int
	clients map[string]*RateLimiter
	calls   int
}

// NewPerClientRateLimiter creates a limiter allowing each client rps
// requests per second.
func NewPerClientRateLimiter(rps int) *PerClientRateLimiter {
	return &PerClientRateLimiter{
		rps:     rps,
		clients: make(map[string]*RateLimiter),
	}
}

// Allow reports whether a request from the given client is permitted.
func (p *PerClientRateLimiter) Allow(key string) bool {
	p.mu.Lock()
	limiter, ok := p.clients[key]
	if !ok {
		limiter = NewRateLimiter(p.rps)
		p.clients[key] = limiter
	}
	p.calls++
	if p.calls%sweepEvery == 0 {
		p.sweep(time.Now())
	}
	p.mu.Unlock()

	return limiter.Allow()
}

// sweep drops buckets of idle clients. Callers hold p.mu.
func (p *PerClientRateLimiter) sweep(now time.Time) {
	for key, limiter := range p.clients {
		if limiter.full(now) {
			delete(p.clients, key)
		}
	}
}

// PerClientRateLimitMiddleware rate limits requests per client IP address.
func PerClientRateLimitMiddleware(limiter *PerClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
