package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewIPRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 1.0 / 60,
		BurstSize:         2,
		CleanupInterval:   time.Hour,
		EntryTTL:          time.Hour,
	})

	router := gin.New()
	router.Use(limiter.Middleware())
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	router.POST("/", ok)
	router.GET("/", ok)

	send := func(method, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/", nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, send(http.MethodPost, "10.0.0.1").Code)
	assert.Equal(t, http.StatusNoContent, send(http.MethodPost, "10.0.0.1").Code)

	blocked := send(http.MethodPost, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, send(http.MethodGet, "10.0.0.1").Code, "only posts are limited")
	assert.Equal(t, http.StatusNoContent, send(http.MethodPost, "10.0.0.2").Code, "limits are per client")
	assert.Equal(t, 2, limiter.ActiveClients())
}
