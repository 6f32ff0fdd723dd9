package http

import (
	"github.com/gin-gonic/gin"

	"pomoflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route
// resolves the caller's scope; rate limiting is applied at the group level
// by the server.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse-task", mw.Scope(), h.Parse)

	tasks := rg.Group("/tasks", mw.Scope())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
	}
}
