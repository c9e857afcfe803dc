package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"idocx/config"
	"idocx/models"
)

// RateLimiter tracks a token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.Mutex
	rate     time.Duration
	burst    int
}

type visitor struct {
	bucket   *tokenBucket
	lastSeen time.Time
}

type tokenBucket struct {
	tokens     int
	capacity   int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

func NewRateLimiter(window time.Duration, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     window,
		burst:    burst,
	}
	go rl.cleanupVisitors()
	return rl
}

func newTokenBucket(capacity int, refillRate time.Duration) *tokenBucket {
	return &tokenBucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	if elapsed >= tb.refillRate {
		added := int(elapsed / tb.refillRate)
		if tb.tokens+added > tb.capacity {
			tb.tokens = tb.capacity
		} else {
			tb.tokens += added
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{
			bucket: newTokenBucket(rl.burst, rl.rate/time.Duration(rl.burst)),
		}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mutex.Unlock()

	return v.bucket.allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(10 * time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > time.Hour {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}

// RateLimitMiddleware limits requests per client IP using the configured
// window and budget. Disabled by configuration it passes everything through.
func RateLimitMiddleware() gin.HandlerFunc {
	cfg := config.AppConfig
	if !cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitRequests)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(limiter.rate).Unix(), 10))

			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.GenericErrorResponse{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
