package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"pomoflow/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestScopeHeaderWins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{}, "padrao@example.com", 60)

	var got model.Scope
	r := gin.New()
	r.GET("/t", mw.Scope(), func(c *gin.Context) {
		got = ScopeFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-User-Email", "ana@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got.UserEmail != "ana@example.com" {
		t.Errorf("UserEmail = %q, want header value", got.UserEmail)
	}

	req = httptest.NewRequest(http.MethodGet, "/t", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got.UserEmail != "padrao@example.com" {
		t.Errorf("UserEmail = %q, want configured default", got.UserEmail)
	}
}

func TestScopeRejectsUnidentified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(nopLogger{}, "", 60)

	r := gin.New()
	r.GET("/t", mw.Scope(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 60/min with burst 6: the seventh instant request must be rejected.
	mw := New(nopLogger{}, "padrao@example.com", 60)

	r := gin.New()
	r.GET("/t", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	limited := false
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("burst of 20 instant requests was never rate limited")
	}

	// A different IP still gets through.
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh IP status = %d, want 200", w.Code)
	}
}
