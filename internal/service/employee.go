package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
)

// ErrActivityLogDisabled is returned when no activity log store is configured.
var ErrActivityLogDisabled = errors.New("activity log is disabled")

// EmployeeService defines the staff-only operations.
type EmployeeService interface {
	DayEndStats(ctx context.Context) (backend.DayEndStats, error)
	RedeemCode(ctx context.Context, code string) (backend.RedeemResult, error)
	Activity(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error)
}

// EmployeeServiceImpl forwards staff requests to the backend and reads the
// activity log.
type EmployeeServiceImpl struct {
	backend backend.Client
	logs    LoggingService
}

// NewEmployeeService creates a new employee service. logs may be nil when
// persistent activity logging is disabled.
func NewEmployeeService(client backend.Client, logs LoggingService) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{backend: client, logs: logs}
}

// DayEndStats returns the backend's end-of-day summary unchanged.
func (s *EmployeeServiceImpl) DayEndStats(ctx context.Context) (backend.DayEndStats, error) {
	stats, err := s.backend.DayEndStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = backend.DayEndStats{}
	}
	return stats, nil
}

// RedeemCode redeems a code. Codes are case-insensitive.
func (s *EmployeeServiceImpl) RedeemCode(ctx context.Context, code string) (backend.RedeemResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	result, err := s.backend.RedeemCode(ctx, backend.RedeemCodeRequest{Code: code})
	if err != nil {
		return nil, err
	}

	log.Info().Str("code", code).Msg("Code redeemed")
	if result == nil {
		result = backend.RedeemResult{}
	}
	return result, nil
}

// Activity returns a page of activity log entries and the total match count.
func (s *EmployeeServiceImpl) Activity(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	if s.logs == nil {
		return nil, 0, ErrActivityLogDisabled
	}

	entries, err := s.logs.QueryLogs(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.logs.CountLogs(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
