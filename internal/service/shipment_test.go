//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/mocks"
)

type stubHSN struct {
	known map[string]bool
	err   error
}

func (s stubHSN) Search(string) ([]hsn.Entry, error) { return nil, nil }

func (s stubHSN) Lookup(code string) (hsn.Entry, error) {
	if s.err != nil {
		return hsn.Entry{}, s.err
	}
	if s.known[code] {
		return hsn.Entry{Code: code}, nil
	}
	return hsn.Entry{}, ErrHSNCodeNotFound
}

func testBooking() model.ShipmentBooking {
	return model.ShipmentBooking{
		Sender:   model.Address{Name: "Asha", Phone: "9999999999", Line1: "1 MG Road", City: "Pune"},
		Receiver: model.Address{Name: "Ravi", Phone: "8888888888", Line1: "2 Park St", City: "Kolkata", Country: "India"},
		Package:  model.PackageDimensions{WeightKg: 1, LengthCm: 30, WidthCm: 20, HeightCm: 20},
		Goods:    []model.GoodsItem{{Description: "T-shirts", HSNCode: "610910", Quantity: 2, Value: 500}},
		Mode:     "surface",
		BookedBy: "asha@example.com",
	}
}

func TestShipmentService_Book(t *testing.T) {
	tests := []struct {
		name     string
		kind     model.ShipmentKind
		hsn      HSNSearcher
		validate bool
		setup    func(*mocks.MockBackendClient)
		wantErr  error
	}{
		{
			name: "domestic booking",
			kind: model.ShipmentDomestic,
			setup: func(m *mocks.MockBackendClient) {
				m.On("CreateShipment", mock.Anything, model.ShipmentDomestic, mock.MatchedBy(func(req backend.CreateShipmentRequest) bool {
					return req.Package.ChargeableWeight == 2.4 && req.Email == "asha@example.com" && req.Country == ""
				})).Return(&backend.CreateShipmentResponse{ShipmentIDStr: "DOM1", Status: "booked"}, nil)
			},
		},
		{
			name: "international booking carries country",
			kind: model.ShipmentInternational,
			setup: func(m *mocks.MockBackendClient) {
				m.On("CreateShipment", mock.Anything, model.ShipmentInternational, mock.MatchedBy(func(req backend.CreateShipmentRequest) bool {
					return req.Country == "India"
				})).Return(&backend.CreateShipmentResponse{ShipmentIDStr: "INT1", Status: "booked"}, nil)
			},
		},
		{
			name:    "invalid kind",
			kind:    "lunar",
			setup:   func(*mocks.MockBackendClient) {},
			wantErr: ErrInvalidShipmentKind,
		},
		{
			name:     "unknown hsn code",
			kind:     model.ShipmentDomestic,
			hsn:      stubHSN{known: map[string]bool{"0901": true}},
			validate: true,
			setup:    func(*mocks.MockBackendClient) {},
			wantErr:  ErrUnknownHSNCode,
		},
		{
			name:     "known hsn code",
			kind:     model.ShipmentDomestic,
			hsn:      stubHSN{known: map[string]bool{"610910": true}},
			validate: true,
			setup: func(m *mocks.MockBackendClient) {
				m.On("CreateShipment", mock.Anything, model.ShipmentDomestic, mock.Anything).
					Return(&backend.CreateShipmentResponse{ShipmentIDStr: "DOM2", Status: "booked"}, nil)
			},
		},
		{
			name:     "index unavailable skips validation",
			kind:     model.ShipmentDomestic,
			hsn:      stubHSN{err: errors.New("dataset missing")},
			validate: true,
			setup: func(m *mocks.MockBackendClient) {
				m.On("CreateShipment", mock.Anything, model.ShipmentDomestic, mock.Anything).
					Return(&backend.CreateShipmentResponse{ShipmentIDStr: "DOM3", Status: "booked"}, nil)
			},
		},
		{
			name: "backend rejects",
			kind: model.ShipmentDomestic,
			setup: func(m *mocks.MockBackendClient) {
				m.On("CreateShipment", mock.Anything, model.ShipmentDomestic, mock.Anything).
					Return(nil, backend.ErrMissingPrice)
			},
			wantErr: backend.ErrMissingPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockBackendClient)
			tt.setup(client)

			svc := NewShipmentService(client, NewWeightService(), tt.hsn, tt.validate)
			result, err := svc.Book(context.Background(), tt.kind, testBooking())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				client.AssertExpectations(t)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, result.ShipmentID)
			assert.Equal(t, "booked", result.Status)
			assert.InDelta(t, 2.4, result.Weight.Chargeable, 1e-9)
			client.AssertExpectations(t)
		})
	}
}

func TestShipmentService_BookClientError(t *testing.T) {
	client := new(mocks.MockBackendClient)
	client.On("CreateShipment", mock.Anything, model.ShipmentDomestic, mock.Anything).
		Return(nil, &backend.Error{Endpoint: "create_shipment", Status: 422, Message: "invalid pincode"}).Once()

	svc := NewShipmentService(client, NewWeightService(), nil, true)
	_, err := svc.Book(context.Background(), model.ShipmentDomestic, testBooking())

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 422, be.Status)
	client.AssertExpectations(t)
}

func TestShipmentService_Get(t *testing.T) {
	client := new(mocks.MockBackendClient)
	client.On("GetShipment", mock.Anything, "DOM1").Return(&backend.ShipmentRecord{
		ShipmentIDStr: "DOM1",
		Type:          "domestic",
		Status:        "in_transit",
		CreatedAt:     "2024-05-01 10:00:00",
		TrackingHistory: []backend.TrackingEvent{
			{Status: "booked", Location: "Pune", Timestamp: "2024-05-01T10:00:00Z", Description: "Shipment booked"},
			{Stage: "picked_up", Date: "2024-05-02", Activity: "Picked up"},
			{Status: "in_transit", Timestamp: "yesterday"},
		},
	}, nil)

	svc := NewShipmentService(client, NewWeightService(), nil, false)
	shipment, err := svc.Get(context.Background(), " DOM1 ")
	require.NoError(t, err)

	assert.Equal(t, "DOM1", shipment.ID)
	require.NotNil(t, shipment.CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), *shipment.CreatedAt)

	require.Len(t, shipment.TrackingHistory, 3)
	first := shipment.TrackingHistory[0]
	assert.Equal(t, "booked", first.Status)
	assert.Equal(t, "Pune", first.Location)
	assert.Equal(t, "Shipment booked", first.Description)
	require.NotNil(t, first.Timestamp)

	second := shipment.TrackingHistory[1]
	assert.Equal(t, "picked_up", second.Status)
	assert.Equal(t, "Picked up", second.Description)
	require.NotNil(t, second.Timestamp)
	assert.Equal(t, 2, second.Timestamp.Day())

	assert.Nil(t, shipment.TrackingHistory[2].Timestamp)

	latest, ok := shipment.LatestEvent()
	require.True(t, ok)
	assert.Equal(t, "in_transit", latest.Status)
}

func TestShipmentService_GetEmptyHistory(t *testing.T) {
	client := new(mocks.MockBackendClient)
	client.On("GetShipment", mock.Anything, "X1").Return(&backend.ShipmentRecord{Status: "booked"}, nil)

	svc := NewShipmentService(client, NewWeightService(), nil, false)
	shipment, err := svc.Get(context.Background(), "X1")
	require.NoError(t, err)

	assert.Equal(t, "X1", shipment.ID)
	assert.NotNil(t, shipment.TrackingHistory)
	assert.Empty(t, shipment.TrackingHistory)
}

func TestShipmentService_List(t *testing.T) {
	client := new(mocks.MockBackendClient)
	client.On("ListShipments", mock.Anything, "asha@example.com").Return([]backend.ShipmentRecord{
		{ShipmentIDStr: "DOM1", Type: "domestic", Status: "booked", Receiver: &model.Address{City: "Kolkata"}},
		{ShipmentIDStr: "INT1", Type: "international", Status: "delivered", Receiver: &model.Address{City: "Austin", Country: "USA"}, CreatedAt: "2024-05-01"},
		{ShipmentIDStr: "DOM2", Status: "booked"},
	}, nil)

	svc := NewShipmentService(client, NewWeightService(), nil, false)
	list, err := svc.List(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Kolkata", list[0].Destination)
	assert.Equal(t, "USA", list[1].Destination)
	assert.NotNil(t, list[1].CreatedAt)
	assert.Empty(t, list[2].Destination)
}

func TestShipmentService_ListError(t *testing.T) {
	client := new(mocks.MockBackendClient)
	client.On("ListShipments", mock.Anything, "asha@example.com").Return(nil, errors.New("connection refused"))

	svc := NewShipmentService(client, NewWeightService(), nil, false)
	list, err := svc.List(context.Background(), "asha@example.com")
	assert.Error(t, err)
	assert.Nil(t, list)
}
