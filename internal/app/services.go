// Package app provides service initialization.
package app

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/circuitbreaker"
	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/service"
)

// ErrMissingSessionSecret is returned when no signing secret is configured.
var ErrMissingSessionSecret = errors.New("session secret must not be empty")

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Backend               backend.Client
	BackendCircuitBreaker *circuitbreaker.CircuitBreaker
	HSNProvider           *hsn.Provider
	Sessions              *service.SessionIssuer

	Weights   service.WeightCalculator
	HSN       service.HSNSearcher
	Quotes    *service.QuoteServiceImpl
	Shipments service.ShipmentService
	Auth      *service.AuthServiceImpl
	Employees service.EmployeeService
}

// InitializeServices builds the backend client and the business services on top of it.
// logs may be nil when the activity log is disabled.
func InitializeServices(cfg config.Config, logs service.LoggingService) (*ServiceComponents, error) {
	if cfg.Session.Secret == "" {
		return nil, ErrMissingSessionSecret
	}

	backendCB := newCircuitBreaker(
		"backend",
		cfg.Backend.CircuitBreakerFailureThreshold,
		cfg.Backend.CircuitBreakerSuccessThreshold,
		cfg.Backend.CircuitBreakerTimeout,
		backend.IsFailure,
	)

	clientOpts := []backend.Option{backend.WithCircuitBreaker(backendCB)}
	if cfg.Backend.Timeout > 0 {
		clientOpts = append(clientOpts, backend.WithTimeout(cfg.Backend.Timeout))
	}
	client := backend.New(cfg.Backend.BaseURL, clientOpts...)

	provider := hsn.NewFileProvider(cfg.HSN.DataPath)
	if cfg.HSN.Preload {
		if _, err := provider.Index(); err != nil {
			return nil, err
		}
	}

	var quoteOpts []service.QuoteOption
	if cfg.Quotes.CacheSize > 0 {
		quoteOpts = append(quoteOpts, service.WithQuoteCache(cfg.Quotes.CacheSize, cfg.Quotes.CacheTTL))
	}
	if cfg.Quotes.OptionsTTL > 0 {
		quoteOpts = append(quoteOpts, service.WithOptionsCache(cfg.Quotes.OptionsTTL))
	}

	weights := service.NewWeightService()
	searcher := service.NewHSNService(provider)
	issuer := service.NewSessionIssuer(service.NewSessionConfigFromConfig(cfg.Session))

	log.Info().
		Str("backend", cfg.Backend.BaseURL).
		Str("hsn_data", cfg.HSN.DataPath).
		Bool("hsn_validate_bookings", cfg.HSN.ValidateBookings).
		Int("quote_cache_size", cfg.Quotes.CacheSize).
		Msg("Services initialized")

	return &ServiceComponents{
		Backend:               client,
		BackendCircuitBreaker: backendCB,
		HSNProvider:           provider,
		Sessions:              issuer,
		Weights:               weights,
		HSN:                   searcher,
		Quotes:                service.NewQuoteService(client, weights, quoteOpts...),
		Shipments:             service.NewShipmentService(client, weights, searcher, cfg.HSN.ValidateBookings),
		Auth:                  service.NewAuthService(client, issuer, cfg.Session.OTPResendCooldown),
		Employees:             service.NewEmployeeService(client, logs),
	}, nil
}

// Stop releases background resources held by the services.
func (s *ServiceComponents) Stop() {
	if s == nil {
		return
	}
	s.Quotes.Stop()
	s.Auth.Stop()
}
