package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter hands out one token bucket per key (IP or user id).
type KeyedRateLimiter struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	r       rate.Limit
	b       int
	idleTTL time.Duration
	sweptAt time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		entries: make(map[string]*limiterEntry),
		r:       r,
		b:       b,
		idleTTL: 10 * time.Minute,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	now := time.Now()

	k.mu.Lock()
	defer k.mu.Unlock()

	if now.Sub(k.sweptAt) > k.idleTTL {
		for key, e := range k.entries {
			if now.Sub(e.lastSeen) > k.idleTTL {
				delete(k.entries, key)
			}
		}
		k.sweptAt = now
	}

	e, ok := k.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter.Allow()
}

func tooManyRequests(c *gin.Context, msg string) {
	response.Abort(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, msg)
}

// RateLimitByIP: r requests per second, burst b.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			tooManyRequests(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByUser falls through for anonymous requests; auth runs first.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if !limiter.Allow(userID) {
			tooManyRequests(c, "Too many requests from this user")
			return
		}
		c.Next()
	}
}
