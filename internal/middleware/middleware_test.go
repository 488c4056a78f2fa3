package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrboard/internal/middleware"
	"hrboard/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates an id when none is supplied", func(t *testing.T) {
		var seen string
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			seen = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})

	t.Run("echoes a caller-supplied id", func(t *testing.T) {
		var seen string
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/", func(c *gin.Context) {
			seen = contextutil.GetRequestID(c.Request.Context())
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "rid-fixed")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "rid-fixed", seen)
		assert.Equal(t, "rid-fixed", rec.Header().Get("X-Request-ID"))
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RateLimitByIP(1, 2)) // 1 rps, burst of 2
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit(), "the burst is spent")

	// A different client has its own budget.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitBySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", c.GetHeader("X-Test-Session"))
		c.Next()
	})
	r.Use(middleware.RateLimitBySession(1, 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(session string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if session != "" {
			req.Header.Set("X-Test-Session", session)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("s1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("s1"))
	assert.Equal(t, http.StatusOK, hit("s2"), "sessions are limited independently")

	// Anonymous requests are waved through; the gate handles them.
	assert.Equal(t, http.StatusOK, hit(""))
	assert.Equal(t, http.StatusOK, hit(""))
}
