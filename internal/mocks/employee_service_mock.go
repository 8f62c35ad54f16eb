// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
)

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) DayEndStats(ctx context.Context) (backend.DayEndStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(backend.DayEndStats), args.Error(1)
}

func (m *MockEmployeeService) RedeemCode(ctx context.Context, code string) (backend.RedeemResult, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(backend.RedeemResult), args.Error(1)
}

func (m *MockEmployeeService) Activity(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.LogEntry), args.Get(1).(int64), args.Error(2)
}
