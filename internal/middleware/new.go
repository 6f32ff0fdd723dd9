package middleware

import (
	pkgLog "pomoflow/pkg/log"
)

type Middleware struct {
	l                pkgLog.Logger
	defaultUserEmail string
	rl               *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds each client IP's
// request rate across all API routes.
func New(l pkgLog.Logger, defaultUserEmail string, requestsPerMin int) Middleware {
	return Middleware{
		l:                l,
		defaultUserEmail: defaultUserEmail,
		rl:               newRateLimiter(requestsPerMin),
	}
}
