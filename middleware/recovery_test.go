package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(limit, window))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	r := newTestRouter(3, time.Minute)

	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		last = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(last, req)
	}

	// 第4次超过阈值，拿到限流响应而不是pong
	require.Equal(t, http.StatusOK, last.Code)
	assert.Contains(t, last.Body.String(), "20005")
	assert.NotContains(t, last.Body.String(), "pong")
}

func TestRateLimitWindowResets(t *testing.T) {
	r := newTestRouter(1, 20*time.Millisecond)

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(first, req)
	assert.Equal(t, "pong", first.Body.String())

	blocked := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(blocked, req2)
	assert.NotContains(t, blocked.Body.String(), "pong")

	time.Sleep(40 * time.Millisecond)

	again := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req3.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(again, req3)
	assert.Equal(t, "pong", again.Body.String())
}
