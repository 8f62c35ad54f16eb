// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
)

type MockBackendClient struct {
	mock.Mock
}

func (m *MockBackendClient) DomesticPrice(ctx context.Context, req backend.DomesticPriceRequest) (*backend.PriceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.PriceResponse), args.Error(1)
}

func (m *MockBackendClient) InternationalPrice(ctx context.Context, req backend.InternationalPriceRequest) (*backend.PriceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.PriceResponse), args.Error(1)
}

func (m *MockBackendClient) InternationalCalculate(ctx context.Context, req backend.InternationalCalculateRequest) (*backend.PriceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.PriceResponse), args.Error(1)
}

func (m *MockBackendClient) InternationalOptions(ctx context.Context) ([]model.InternationalOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InternationalOption), args.Error(1)
}

func (m *MockBackendClient) CreateShipment(ctx context.Context, kind model.ShipmentKind, req backend.CreateShipmentRequest) (*backend.CreateShipmentResponse, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CreateShipmentResponse), args.Error(1)
}

func (m *MockBackendClient) GetShipment(ctx context.Context, id string) (*backend.ShipmentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.ShipmentRecord), args.Error(1)
}

func (m *MockBackendClient) ListShipments(ctx context.Context, email string) ([]backend.ShipmentRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.ShipmentRecord), args.Error(1)
}

func (m *MockBackendClient) Signup(ctx context.Context, req backend.SignupRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthResponse), args.Error(1)
}

func (m *MockBackendClient) Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthResponse), args.Error(1)
}

func (m *MockBackendClient) SendOTP(ctx context.Context, req backend.SendOTPRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthResponse), args.Error(1)
}

func (m *MockBackendClient) VerifyOTP(ctx context.Context, req backend.VerifyOTPRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthResponse), args.Error(1)
}

func (m *MockBackendClient) DayEndStats(ctx context.Context) (backend.DayEndStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(backend.DayEndStats), args.Error(1)
}

func (m *MockBackendClient) RedeemCode(ctx context.Context, req backend.RedeemCodeRequest) (backend.RedeemResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(backend.RedeemResult), args.Error(1)
}

var _ backend.Client = (*MockBackendClient)(nil)
