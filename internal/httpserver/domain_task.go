package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pomoflow/internal/middleware"
	taskHTTP "pomoflow/internal/task/delivery/http"
	taskRepo "pomoflow/internal/task/repository/memory"
	taskUC "pomoflow/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.l)

	uc := taskUC.New(srv.l, srv.parser, repo, srv.calendar, srv.timezone)

	h := taskHTTP.New(srv.l, uc)

	// Registers /api/v1/parse-task and /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
