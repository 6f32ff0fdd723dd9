package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pomoflow/config"
	_ "pomoflow/docs" // Swagger docs
	"pomoflow/internal/httpserver"
	"pomoflow/pkg/gcalendar"
	"pomoflow/pkg/log"
	"pomoflow/pkg/taskparse"
)

// @title       Pomoflow API
// @description Personal productivity API: Portuguese natural language task parsing, calendar-safe due dates, recurring tasks and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pomoflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task text parser
	timezone := cfg.Parser.Timezone
	parser, err := taskparse.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		parser, _ = taskparse.NewParser(timezone)
	}

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Parser:           parser,
		Calendar:         calendarClient,
		Timezone:         timezone,
		DefaultUserEmail: cfg.DefaultUser.Email,
		RateLimitPerMin:  cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
