package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"lexbook/config"
)

func newLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func get(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddlewareThrottlesBursts(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 3
	r := newLimitedRouter()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "198.51.100.7"))
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, "198.51.100.7"))

	// A different client keeps its own budget.
	assert.Equal(t, http.StatusOK, get(r, "198.51.100.8"))
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("X-Real-IP", "10.0.0.2")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	assert.Equal(t, "203.0.113.9", getClientIP(c))

	req.Header.Del("X-Forwarded-For")
	assert.Equal(t, "10.0.0.2", getClientIP(c))

	req.Header.Del("X-Real-IP")
	req.RemoteAddr = "192.0.2.4:51234"
	assert.Equal(t, "192.0.2.4", getClientIP(c))
}
