// Package app provides router configuration.
package app

import (
	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/http"
	"github.com/guttosm/courier-portal/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handlers http.Handlers
	Config   http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and router configuration.
// dbComponents and recorder may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	recorder middleware.ActivityRecorder,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("hsn_index", services.HSNProvider)
	healthHandler.RegisterCircuitBreaker("backend", services.BackendCircuitBreaker)
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.Checker())
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	handlers := http.Handlers{
		Weight:   http.NewWeightHandler(services.Weights),
		HSN:      http.NewHSNHandler(services.HSN),
		Quote:    http.NewQuoteHandler(services.Quotes, recorder),
		Shipment: http.NewShipmentHandler(services.Shipments, recorder),
		Auth:     http.NewAuthHandler(services.Auth, recorder),
		Employee: http.NewEmployeeHandler(services.Employees, recorder),
		Health:   healthHandler,
	}

	routerCfg := http.DefaultRouterConfig()
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimit = cfg.Server.RateLimit
	}
	if cfg.Server.RateWindow > 0 {
		routerCfg.RateWindow = cfg.Server.RateWindow
	}
	if cfg.Server.AuthRateLimit > 0 {
		routerCfg.AuthRateLimit = cfg.Server.AuthRateLimit
	}
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.SessionValidator = services.Sessions
	routerCfg.Recorder = recorder

	return &RouterComponents{
		Handlers: handlers,
		Config:   routerCfg,
	}
}
