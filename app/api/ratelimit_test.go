package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 2, IdleTTL: time.Minute}, clock)

	assert.True(t, rl.Allow("alice"))
	assert.True(t, rl.Allow("alice"))
	assert.False(t, rl.Allow("alice"))
	assert.True(t, rl.Allow("bob"))

	clock.Advance(time.Second)
	assert.True(t, rl.Allow("alice"))
	assert.False(t, rl.Allow("alice"))
}

func TestRateLimiter_EvictsIdle(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1, IdleTTL: time.Minute}, clock)

	assert.True(t, rl.Allow("alice"))
	clock.Advance(2 * time.Minute)
	rl.Allow("bob")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "alice")
	assert.Contains(t, rl.visitors, "bob")
}

func TestRateLimiter_SweepsOncePerIdleTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1, IdleTTL: time.Minute}, clock)
	has := func(key string) bool {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		_, ok := rl.visitors[key]
		return ok
	}

	rl.Allow("alice")
	clock.Advance(59 * time.Second)
	rl.Allow("carol")
	clock.Advance(2 * time.Second)
	rl.Allow("bob")
	assert.False(t, has("alice"))
	assert.True(t, has("carol"))

	// carol is idle past the TTL but the next sweep is not due yet
	clock.Advance(59 * time.Second)
	rl.Allow("dave")
	assert.True(t, has("carol"))

	clock.Advance(time.Second)
	rl.Allow("dave")
	assert.False(t, has("carol"))
	assert.True(t, has("bob"))
	assert.True(t, has("dave"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(RateLimitConfig{RequestsPerSecond: 1, Burst: 1}, clockwork.NewFakeClock())

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
