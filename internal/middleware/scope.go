package middleware

import (
	"github.com/gin-gonic/gin"

	"pomoflow/internal/model"
	"pomoflow/pkg/response"
)

const scopeKey = "pomoflow.scope"

// Scope resolves the calling user. The X-User-Email header wins; when it is
// absent the configured default user is assumed. With neither, the request
// is rejected.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetHeader("X-User-Email")
		if email == "" {
			email = m.defaultUserEmail
		}
		if email == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserEmail: email})
		c.Next()
	}
}

// ScopeFromContext retrieves the scope set by the Scope middleware.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
