package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cms-admin/internal/config"
)

func TestRateLimitMiddlewareBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := NewRateLimitManager(context.Background())
	defer manager.Shutdown()

	cfg := &config.Config{RateLimitRequests: 2, RateLimitWindow: 3600}
	router := gin.New()
	router.Use(RateLimitMiddleware(cfg, manager))
	router.POST("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api", nil))
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected statuses: %v", statuses)
	}
}

func TestRateLimitBypassesHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if !shouldBypassRateLimit(req) {
		t.Fatalf("expected health checks to bypass rate limiting")
	}
	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	if shouldBypassRateLimit(req) {
		t.Fatalf("expected non-GET requests to be limited")
	}
}

func TestRateLimitManagerCleanup(t *testing.T) {
	manager := NewRateLimitManager(context.Background())
	defer manager.Shutdown()

	manager.GetVisitor("10.0.0.1", 10, 60, 0)
	manager.GetVisitor("10.0.0.2", 10, 60, 0)

	manager.cleanup(time.Now().Add(visitorIdleTimeout + time.Second))
	if manager.visitorCount() != 0 {
		t.Fatalf("expected idle visitors removed, got %d", manager.visitorCount())
	}

	if manager.GetVisitor("10.0.0.3", 0, 60, 0) != nil {
		t.Fatalf("expected disabled limit to return nil limiter")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "given-id")
	router.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != "given-id" || rec.Body.String() != "given-id" {
		t.Fatalf("expected incoming request id reused, got header %q body %q", rec.Header().Get(RequestIDHeader), rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("expected generated uuid, got %q", rec.Header().Get(RequestIDHeader))
	}
}
