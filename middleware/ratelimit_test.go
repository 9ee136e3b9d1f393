package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute)
	now := time.Unix(1700000000, 0)
	rl.nowFunc = func() time.Time { return now }

	for i := 0; i < 60; i++ {
		require.True(t, rl.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "61st request must be rejected")

	// other keys are unaffected
	assert.True(t, rl.Allow("5.6.7.8"))

	// a minute later the window has rolled over
	now = now.Add(61 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestRateLimiterRejectionDoesNotCount(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Unix(1700000000, 0)
	rl.nowFunc = func() time.Time { return now }

	require.True(t, rl.Allow("k"))
	require.True(t, rl.Allow("k"))
	for i := 0; i < 10; i++ {
		assert.False(t, rl.Allow("k"))
	}
	assert.Equal(t, 2, rl.entries["k"].count)
}

func TestRateLimiterSweepsStaleKeys(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute)
	now := time.Unix(1700000000, 0)
	rl.nowFunc = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		rl.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	require.Equal(t, 100, rl.size())

	now = now.Add(2 * time.Minute)
	rl.Allow("fresh")
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(2, time.Minute)

	r := gin.New()
	r.POST("/api/orders", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, do("9.9.9.9, 10.0.0.1"))
	assert.Equal(t, http.StatusCreated, do("9.9.9.9"))
	assert.Equal(t, http.StatusTooManyRequests, do("9.9.9.9"))
	assert.Equal(t, http.StatusCreated, do("8.8.8.8"))
}
