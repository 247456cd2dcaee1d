package middleware

import (
	"net/http"
	"sync"
	"time"

	"menuadmin/internal/result"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowEntry counts the requests of one IP inside a fixed window.
type windowEntry struct {
	count     int
	windowEnd time.Time
}

// windowLimiter allows limit requests per window per client IP.
type windowLimiter struct {
	name   string
	limit  int
	window time.Duration

	mu      sync.Mutex
	entries map[string]*windowEntry
}

var (
	limiters   []*windowLimiter
	limitersMu sync.Mutex
	purgeOnce  sync.Once
)

func newWindowLimiter(name string, limit int, window time.Duration) *windowLimiter {
	l := &windowLimiter{name: name, limit: limit, window: window, entries: make(map[string]*windowEntry)}
	limitersMu.Lock()
	limiters = append(limiters, l)
	limitersMu.Unlock()
	purgeOnce.Do(func() { go purgeExpiredEntries() })
	return l
}

// allow records one request from ip and reports whether it is within the limit,
// plus the end of the current window.
func (l *windowLimiter) allow(ip string, now time.Time) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

func (l *windowLimiter) purge(now time.Time) (purged, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, e := range l.entries {
		if now.After(e.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
	}
	return purged, len(l.entries)
}

// ── Login rate limiter ────────────────────────────────────────────────────────

const loginAttemptsPerMinute = 20

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := newWindowLimiter("login", loginAttemptsPerMinute, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := l.allow(c.ClientIP(), time.Now()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, result.Failure("too many login attempts, try again in a minute"))
			return
		}
		c.Next()
	}
}

// ── General API rate limiter ──────────────────────────────────────────────────

// RateLimiter allows limit requests per window per client IP.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newWindowLimiter("api", limit, window)
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", windowEnd.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, result.Failure("too many requests"))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ───────────────────────────────────────────────────────────

const purgeInterval = 5 * time.Minute

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		limitersMu.Lock()
		current := append([]*windowLimiter(nil), limiters...)
		limitersMu.Unlock()

		for _, l := range current {
			purged, remaining := l.purge(now)
			if purged > 0 {
				log.Debug().
					Str("limiter", l.name).
					Int("entries_purged", purged).
					Int("entries_remaining", remaining).
					Msg("rate limiter map purged")
			}
		}
	}
}
