package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/internal/testhelpers"
)

func TestRateLimiter_IsAllowed(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	ctx := context.Background()

	rl := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     2,
		KeyPrefix: "test_rate_limit",
	})
	fixed := time.Date(2024, 1, 1, 12, 0, 30, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	allowed, remaining, reset, err := rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC), reset.UTC())

	allowed, remaining, _, err = rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, remaining, _, err = rl.IsAllowed(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Other clients keep their own budget
	allowed, _, _, err = rl.IsAllowed(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	left, _, err := rl.GetRemainingRequests(ctx, "10.0.0.3")
	require.NoError(t, err)
	assert.Equal(t, 2, left)
}

func TestRateLimitMiddleware(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)

	rl := NewRateLimiter(client, RateLimitConfig{
		Window:    time.Minute,
		Limit:     1,
		KeyPrefix: "test_middleware",
	})

	router := gin.New()
	router.POST("/recipes", rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	reset, err := strconv.ParseInt(w.Header().Get("X-RateLimit-Reset"), 10, 64)
	require.NoError(t, err)
	assert.Greater(t, reset, time.Now().Unix()-1)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	// Nothing listens on this port
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRecipeWriteRateLimiter(client)
	router := gin.New()
	router.POST("/recipes", rl.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}
