package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pomoflow/pkg/gcalendar"
	pkgLog "pomoflow/pkg/log"
	"pomoflow/pkg/taskparse"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	parser           *taskparse.Parser
	calendar         *gcalendar.Client // nil disables calendar sync
	timezone         string
	defaultUserEmail string
	rateLimitPerMin  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Parser           *taskparse.Parser
	Calendar         *gcalendar.Client
	Timezone         string
	DefaultUserEmail string
	RateLimitPerMin  int
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		parser:           cfg.Parser,
		calendar:         cfg.Calendar,
		timezone:         cfg.Timezone,
		defaultUserEmail: cfg.DefaultUserEmail,
		rateLimitPerMin:  cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	return nil
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv.l.Info(shutdownCtx, "Shutting down HTTP server...")
	return httpSrv.Shutdown(shutdownCtx)
}
