package api

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// RateLimitConfig bounds requests per caller
type RateLimitConfig struct {
	RequestsPerSecond float64       `env:"RATE_LIMIT_RPS" env-default:"10"`
	Burst             int           `env:"RATE_LIMIT_BURST" env-default:"20"`
	IdleTTL           time.Duration `env:"RATE_LIMIT_IDLE_TTL" env-default:"10m"`
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per caller identity, falling back to
// the client IP for anonymous requests.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
	cfg       RateLimitConfig
	clock     clockwork.Clock
}

func NewRateLimiter(cfg RateLimitConfig, clock clockwork.Clock) *RateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		lastSweep: clock.Now(),
		cfg:       cfg,
		clock:     clock,
	}
}

// Allow reports whether key may make a request now
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.evict(now)

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.cfg.RequestsPerSecond), rl.cfg.Burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evict drops idle visitors at most once per IdleTTL
func (rl *RateLimiter) evict(now time.Time) {
	if rl.cfg.IdleTTL <= 0 || now.Sub(rl.lastSweep) < rl.cfg.IdleTTL {
		return
	}
	rl.lastSweep = now
	for k, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.cfg.IdleTTL {
			delete(rl.visitors, k)
		}
	}
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if id := CallerID(c); id != uuid.Nil {
			key = id.String()
		}

		if !rl.Allow(key) {
			TooManyRequestsResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
