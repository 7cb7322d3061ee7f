package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-timetable/config"
	_ "smart-timetable/docs" // Swagger docs
	"smart-timetable/internal/httpserver"
	"smart-timetable/internal/middleware"
	plannerHTTP "smart-timetable/internal/planner/delivery/http"
	plannerRepo "smart-timetable/internal/planner/repository/docstore"
	"smart-timetable/internal/planner/usecase"
	"smart-timetable/pkg/docstore"
	"smart-timetable/pkg/gcalendar"
	"smart-timetable/pkg/log"
)

// @title       Smart Timetable & Productivity API
// @description Task and time-block backend with greedy auto-scheduling and scored recommendations.
// @version     1
// @host        localhost:8000
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

	logger.Info(ctx, "Starting Smart Timetable API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store. A failed open is not fatal: the API stays up,
	// creation and scheduling fail with store errors, listings degrade
	// to empty results.
	store, err := docstore.Open(docstore.Config{
		Driver:      cfg.Storage.Driver,
		Path:        cfg.Storage.Path,
		BusyTimeout: cfg.Storage.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Warnf(ctx, "Document store not available: %v", err)
		store = nil
	}
	if store.Available() {
		logger.Infof(ctx, "Document store ready (%s: %s)", cfg.Storage.Driver, cfg.Storage.Path)
		defer store.Close()
	}

	// 4. Google Calendar export (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar export enabled")
			calendar = client
		}
	}

	// 5. Planner domain
	repo := plannerRepo.New(store, logger)
	uc := usecase.New(repo, calendar, usecase.Config{
		WindowHours:   cfg.Scheduler.WindowHours,
		BufferMinutes: cfg.Scheduler.BufferMinutes,
		SuggestLimit:  cfg.Recommend.Limit,
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Timezone:      cfg.GoogleCalendar.Timezone,
	}, logger)
	plannerHandler := plannerHTTP.New(logger, uc)

	// 6. HTTP server
	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		Store:          store,
		PlannerHandler: plannerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
