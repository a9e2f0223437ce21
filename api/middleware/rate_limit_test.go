package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/sendOTP", RateLimit(maxRequests, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func doRequest(r *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/sendOTP", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitBlocksBeyondMax(t *testing.T) {
	r := newLimitedRouter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if code := doRequest(r); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
	if code := doRequest(r); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", code)
	}
}

func TestRateLimitResetsAfterWindow(t *testing.T) {
	r := newLimitedRouter(1, 30*time.Millisecond)

	if code := doRequest(r); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := doRequest(r); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 inside window, got %d", code)
	}

	time.Sleep(40 * time.Millisecond)
	if code := doRequest(r); code != http.StatusOK {
		t.Fatalf("expected 200 after window passed, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newLimitedRouter(0, time.Minute)

	for i := 0; i < 20; i++ {
		if code := doRequest(r); code != http.StatusOK {
			t.Fatalf("expected 200 with limit disabled, got %d", code)
		}
	}
}
