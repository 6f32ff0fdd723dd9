package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pomoflow/internal/middleware"
	"pomoflow/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}

	srv.registerSystemRoutes()

	mw := middleware.New(srv.l, srv.defaultUserEmail, srv.rateLimitPerMin)

	api := srv.gin.Group("/api/v1", mw.RateLimit())
	if err := srv.setupTaskDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
