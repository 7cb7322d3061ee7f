package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newLimitedRouter(perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{}, Config{RateLimitPerMin: perMin})

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	// 120/min gives a burst of 12.
	r := newLimitedRouter(120)

	for i := 0; i < 12; i++ {
		if code := get(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	// 10/min gives a burst of 1: the second immediate request must fail.
	r := newLimitedRouter(10)

	if code := get(r, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := get(r, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := newLimitedRouter(10)

	if code := get(r, "10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("client a: expected 200, got %d", code)
	}
	if code := get(r, "10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("client b: expected 200, got %d", code)
	}
}

func TestRateLimitDisabled(t *testing.T) {
	r := newLimitedRouter(0)

	for i := 0; i < 50; i++ {
		if code := get(r, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
}
