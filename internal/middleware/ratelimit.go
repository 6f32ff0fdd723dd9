package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"pomoflow/pkg/response"
)

// RateLimit bounds requests per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := extractIP(c.Request)
		if !m.rl.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractIP extracts the client IP, honoring proxy headers.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

// rateLimiter keys token buckets by source with auto-cleanup, so idle
// clients do not pin memory.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
