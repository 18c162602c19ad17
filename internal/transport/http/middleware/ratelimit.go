package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"salestrack/internal/transport/http/api"
)

type RateLimitKeyFunc func(r *http.Request) string

type rateBucket struct {
	count int
	reset time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	keyFn   RateLimitKeyFunc
	clients map[string]*rateBucket
}

// RateLimit is a fixed-window limiter keyed by the authenticated user,
// falling back to the client IP for anonymous traffic.
func RateLimit(limit int, window time.Duration) func(http.Handler) http.Handler {
	rl := newRateLimiter(limit, window, actorOrIPKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.enforce(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginRateLimit throttles credential endpoints harder, keyed by IP only
// since there is no identity yet.
func LoginRateLimit(baseLimit int, window time.Duration) func(http.Handler) http.Handler {
	rl := newRateLimiter(max(baseLimit/4, 1), window, clientIPKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}
			if !rl.enforce(w, r) {
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func actorOrIPKey(r *http.Request) string {
	if user, ok := GetUser(r.Context()); ok && user.UserID != "" {
		return "user:" + user.UserID
	}
	return clientIPKey(r)
}

func clientIPKey(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		parts := strings.Split(fwd, ",")
		if value := strings.TrimSpace(parts[0]); value != "" {
			return value
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}

func newRateLimiter(limit int, window time.Duration, keyFn RateLimitKeyFunc) *rateLimiter {
	return &rateLimiter{
		limit:   limit,
		window:  window,
		keyFn:   keyFn,
		clients: map[string]*rateBucket{},
	}
}

func (rl *rateLimiter) enforce(w http.ResponseWriter, r *http.Request) bool {
	if rl.limit <= 0 {
		return true
	}

	key := rl.keyFn(r)
	if key == "" {
		key = clientIPKey(r)
	}
	now := time.Now()

	rl.mu.Lock()
	bucket, ok := rl.clients[key]
	if !ok || now.After(bucket.reset) {
		bucket = &rateBucket{count: 0, reset: now.Add(rl.window)}
		rl.clients[key] = bucket
	}
	bucket.count++
	remaining := rl.limit - bucket.count
	resetIn := durationSeconds(bucket.reset.Sub(now))
	overLimit := bucket.count > rl.limit
	rl.mu.Unlock()

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetIn))

	if overLimit {
		w.Header().Set("Retry-After", strconv.Itoa(max(resetIn, 1)))
		slog.Warn("rate limit exceeded",
			"key", key,
			"path", r.URL.Path,
			"method", r.Method,
			"limit", rl.limit,
		)
		api.Fail(w, http.StatusTooManyRequests, "rate_limited", "too many requests", GetRequestID(r.Context()))
		return false
	}

	return true
}

func durationSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	seconds := int(d.Seconds())
	if seconds <= 0 {
		return 1
	}
	return seconds
}
