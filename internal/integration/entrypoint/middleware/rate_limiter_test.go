// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, time.Minute), server
}

func TestRateLimiterAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows requests up to the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 3)

		for i := 0; i < 3; i++ {
			allowed, err := limiter.allow(ctx, "10.0.0.1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !allowed {
				t.Fatalf("request %d should have been allowed", i+1)
			}
		}

		allowed, err := limiter.allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed {
			t.Error("request over the limit should have been rejected")
		}
	})

	t.Run("counts each client separately", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1)

		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("first client's request should have been allowed")
		}
		if allowed, _ := limiter.allow(ctx, "10.0.0.2"); !allowed {
			t.Error("second client's first request should have been allowed")
		}
	})

	t.Run("the window expiry resets the counter", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1)

		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("first request should have been allowed")
		}
		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); allowed {
			t.Fatal("second request should have been rejected")
		}

		server.FastForward(2 * time.Minute)

		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); !allowed {
			t.Error("request after the window expired should have been allowed")
		}
	})

	t.Run("reset clears all limiter keys", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1)

		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); !allowed {
			t.Fatal("first request should have been allowed")
		}
		if err := limiter.Reset(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed, _ := limiter.allow(ctx, "10.0.0.1"); !allowed {
			t.Error("request after reset should have been allowed")
		}
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limiter *RateLimiter) *gin.Engine {
		router := gin.New()
		router.Use(limiter.Middleware())
		router.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	doRequest := func(router *gin.Engine) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("responds 429 once the limit is exceeded", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 2)
		router := newRouter(limiter)

		for i := 0; i < 2; i++ {
			if rec := doRequest(router); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}

		rec := doRequest(router)
		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", rec.Code)
		}
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1)
		server.Close()

		router := newRouter(limiter)
		if rec := doRequest(router); rec.Code != http.StatusOK {
			t.Errorf("expected the request to pass through, got %d", rec.Code)
		}
	})

	t.Run("skips limiting in test environments", func(t *testing.T) {
		t.Setenv("ENV", "test")
		limiter, _ := newTestLimiter(t, 1)
		router := newRouter(limiter)

		for i := 0; i < 5; i++ {
			if rec := doRequest(router); rec.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
			}
		}
	})
}
