package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := newTestRouter(SecurityHeadersMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "img-src 'self' data: https:")
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestInputValidationMiddlewareRejectsOversizedBody(t *testing.T) {
	r := newTestRouter(InputValidationMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ping", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = 11 * 1024 * 1024
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestInputValidationMiddlewareRejectsBadContentType(t *testing.T) {
	r := newTestRouter(InputValidationMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ping", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestInputValidationMiddlewareAllowsMultipart(t *testing.T) {
	r := newTestRouter(InputValidationMiddleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ping", strings.NewReader("body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterReusesLimiterPerKey(t *testing.T) {
	rl := NewRateLimiter()

	a := rl.GetLimiter("designs|1.2.3.4", rate.Every(time.Second), 10)
	b := rl.GetLimiter("designs|1.2.3.4", rate.Every(time.Second), 10)
	other := rl.GetLimiter("designs|5.6.7.8", rate.Every(time.Second), 10)

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
}

func TestRateLimiterCleanupDropsIdleKeys(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale|1.2.3.4", rate.Every(time.Second), 1)

	rl.mutex.Lock()
	rl.lastSeen["stale|1.2.3.4"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.RLock()
	_, exists := rl.limiters["stale|1.2.3.4"]
	rl.mutex.RUnlock()
	assert.False(t, exists)
}

func TestStartCleanupSweepsIdleKeys(t *testing.T) {
	rl := NewRateLimiter()
	rl.GetLimiter("stale|4.4.4.4", rate.Every(time.Second), 1)

	rl.mutex.Lock()
	rl.lastSeen["stale|4.4.4.4"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.StartCleanup(10 * time.Millisecond)

	assert.Eventually(t, func() bool {
		rl.mutex.RLock()
		defer rl.mutex.RUnlock()
		_, exists := rl.limiters["stale|4.4.4.4"]
		return !exists
	}, time.Second, 10*time.Millisecond)
}

func TestAuthRateLimitMiddlewareBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthRateLimitMiddleware())
	r.POST("/login", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	var lastCode int
	for i := 0; i < 6; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		r.ServeHTTP(w, req)
		lastCode = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
