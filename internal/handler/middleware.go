package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// trustedProxyCount is the number of reverse proxies that append to
// X-Forwarded-For in front of this service.
const trustedProxyCount = 1

// clientIP extracts the originating address, reading from the rightmost
// trusted position in X-Forwarded-For to resist spoofing, falling back
// to the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		idx := len(parts) - trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter enforces a per-IP sliding-window limit. A public contact
// form is a spam magnet, so the submission route sits behind it.
type RateLimiter struct {
	maxPerMinute int
	mu           sync.Mutex
	seen         map[string][]time.Time
}

// NewRateLimiter creates a limiter allowing maxPerMinute requests per
// client IP and starts its background cleanup.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute: maxPerMinute,
		seen:         make(map[string][]time.Time),
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware returns an http.Handler that rejects over-limit clients
// with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		now := time.Now()

		rl.mu.Lock()
		recent := prune(rl.seen[ip], now.Add(-time.Minute))
		if len(recent) >= rl.maxPerMinute {
			oldest := recent[0]
			rl.seen[ip] = recent
			rl.mu.Unlock()

			retryAfter := int(oldest.Add(time.Minute).Sub(now).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			writeJSON(w, http.StatusTooManyRequests, submitFailed{Error: "Too many requests"})
			return
		}
		rl.seen[ip] = append(recent, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// cleanupLoop drops idle clients so the map does not grow unbounded.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		windowStart := time.Now().Add(-time.Minute)
		rl.mu.Lock()
		for ip, stamps := range rl.seen {
			recent := prune(stamps, windowStart)
			if len(recent) == 0 {
				delete(rl.seen, ip)
				continue
			}
			rl.seen[ip] = recent
		}
		rl.mu.Unlock()
	}
}

// prune filters in place on the shared backing array.
func prune(stamps []time.Time, windowStart time.Time) []time.Time {
	recent := stamps[:0]
	for _, ts := range stamps {
		if ts.After(windowStart) {
			recent = append(recent, ts)
		}
	}
	return recent
}
