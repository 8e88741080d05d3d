package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(0, time.Minute) // limit 0 -> always deny
	r := gin.New()
	r.Use(Middleware(lim))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(429), body["statusCode"])
	require.Equal(t, "Too many attempts. Try again later.", body["message"])
	data := body["data"].(map[string]any)
	require.Contains(t, data, "retry_after")
	require.Contains(t, data, "reset_time")
}

func TestMiddleware_AllowsWithinLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim := New(2, time.Minute)
	r := gin.New()
	r.Use(Middleware(lim))
	r.POST("/login", func(c *gin.Context) { c.Status(204) })

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/login", nil))
		codes = append(codes, w.Code)
		if i == 0 {
			require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	require.Equal(t, []int{204, 204, 429}, codes)
}

func TestRateLimiter_ResetAndCleanup(t *testing.T) {
	lim := New(1, 20*time.Millisecond)
	require.True(t, lim.Allow("a"))
	require.False(t, lim.Allow("a"))

	lim.Reset("a")
	require.True(t, lim.Allow("a"))

	time.Sleep(30 * time.Millisecond)
	lim.Cleanup()
	require.Equal(t, 1, lim.GetRemaining("a"))
}
