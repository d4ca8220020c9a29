package server

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether a client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
	Store() string
}

// MemoryLimiter keeps one token bucket per client in process memory.
type MemoryLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter allows rps requests per second per key with the given
// burst. Keys idle for longer than ttl are forgotten.
func NewMemoryLimiter(rps float64, burst int, ttl time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (rl *MemoryLimiter) Allow(_ context.Context, key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.evict(now)

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

func (rl *MemoryLimiter) Store() string { return "memory" }

// evict drops idle visitors; callers hold mu.
func (rl *MemoryLimiter) evict(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, key)
		}
	}
}

// RedisLimiter counts requests per key in one-minute windows shared by all
// replicas. Redis errors let the request through.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, rps float64, burst int) *RedisLimiter {
	limit := int64(math.Ceil(rps * 60))
	if limit < int64(burst) {
		limit = int64(burst)
	}
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: time.Minute,
		now:    time.Now,
	}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) bool {
	windowKey := fmt.Sprintf("fitbook:ratelimit:%s:%s", key, rl.now().UTC().Format("2006-01-02-15-04"))

	count, err := rl.client.Incr(ctx, windowKey).Result()
	if err != nil {
		logger.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, windowKey, rl.window).Err(); err != nil {
			logger.Warn("Failed to set rate limit window expiry", "key", windowKey, "error", err)
		}
	}

	return count <= rl.limit
}

func (rl *RedisLimiter) Store() string { return "redis" }

func RateLimitMiddleware(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			metrics.RecordRateLimited(limiter.Store())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Detail: "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
