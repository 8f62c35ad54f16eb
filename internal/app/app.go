// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/http"
	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/service"
)

// App is the wired application: the router plus what must be released on shutdown.
type App struct {
	Router *gin.Engine

	services    *ServiceComponents
	database    *DatabaseComponents
	asyncLogger *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var (
		asyncLogger *middleware.AsyncLogger
		recorder    middleware.ActivityRecorder
	)
	if dbComponents != nil {
		asyncLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		recorder = asyncLogger
	}

	serviceComponents, err := InitializeServices(cfg, loggingServiceOf(dbComponents))
	if err != nil {
		asyncLogger.Stop()
		_ = dbComponents.Close(context.Background())
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, recorder, cfg)

	return &App{
		Router:      http.NewRouter(routerComponents.Handlers, routerComponents.Config),
		services:    serviceComponents,
		database:    dbComponents,
		asyncLogger: asyncLogger,
	}, nil
}

// Close flushes pending activity entries and releases background resources.
func (a *App) Close(ctx context.Context) {
	a.services.Stop()

	a.asyncLogger.Stop()
	if a.asyncLogger != nil {
		enqueued, dropped, written, failed := a.asyncLogger.Stats()
		log.Info().
			Int64("enqueued", enqueued).
			Int64("dropped", dropped).
			Int64("written", written).
			Int64("failed", failed).
			Msg("Activity log flushed")
	}

	if err := a.database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}

func loggingServiceOf(d *DatabaseComponents) service.LoggingService {
	if d == nil {
		return nil
	}
	return d.LoggingService
}
