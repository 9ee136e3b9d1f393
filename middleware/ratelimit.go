package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateEntry struct {
	windowStart time.Time
	count       int
}

// RateLimiter is a fixed-window counter keyed by client address. Counters are
// mutex-guarded and stale keys are swept once per window, so the map stays
// bounded by the number of distinct clients seen in the last window. State is
// process-local; multiple server processes each count independently.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	entries   map[string]*rateEntry
	lastSweep time.Time
	nowFunc   func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*rateEntry),
		nowFunc: time.Now,
	}
}

// Allow records one request for key and reports whether it is under the
// limit. A new or expired window resets the counter to 1. At the limit the
// counter is not incremented further.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.nowFunc()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSweep) > rl.window {
		rl.sweep(now)
		rl.lastSweep = now
	}

	cur, ok := rl.entries[key]
	if !ok || now.Sub(cur.windowStart) > rl.window {
		rl.entries[key] = &rateEntry{windowStart: now, count: 1}
		return true
	}
	if cur.count >= rl.limit {
		return false
	}
	cur.count++
	return true
}

// sweep drops entries whose window has expired. Caller holds the lock.
func (rl *RateLimiter) sweep(now time.Time) {
	for key, e := range rl.entries {
		if now.Sub(e.windowStart) > rl.window {
			delete(rl.entries, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(clientKey(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Too many requests. Please try again shortly."})
			c.Abort()
			return
		}
		c.Next()
	}
}

// clientKey picks the first X-Forwarded-For entry, then the socket address,
// then a fixed fallback.
func clientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
