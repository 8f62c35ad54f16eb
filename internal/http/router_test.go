//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/internal/backend"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/hsn"
	"github.com/guttosm/courier-portal/internal/middleware"
	"github.com/guttosm/courier-portal/internal/mocks"
	"github.com/guttosm/courier-portal/internal/service"
)

type routerFixture struct {
	router    *gin.Engine
	client    *mocks.MockBackendClient
	employees *mocks.MockEmployeeService
	issuer    *service.SessionIssuer
}

func newRouterFixture(t *testing.T, cfg RouterConfig) *routerFixture {
	t.Helper()

	client := new(mocks.MockBackendClient)
	employees := new(mocks.MockEmployeeService)
	issuer := service.NewSessionIssuer(service.SessionConfig{
		Secret:     "router-test-secret",
		SessionTTL: time.Hour,
		FlowTTL:    10 * time.Minute,
	})
	weights := service.NewWeightService()
	searcher := service.NewHSNService(hsn.NewStaticProvider(testHSNTree()))

	if cfg.SessionValidator == nil {
		cfg.SessionValidator = issuer
	}

	handlers := Handlers{
		Weight:   NewWeightHandler(weights),
		HSN:      NewHSNHandler(searcher),
		Quote:    NewQuoteHandler(service.NewQuoteService(client, weights), nil),
		Shipment: NewShipmentHandler(service.NewShipmentService(client, weights, searcher, true), nil),
		Auth:     NewAuthHandler(service.NewAuthService(client, issuer, 30*time.Second), nil),
		Employee: NewEmployeeHandler(employees, nil),
		Health:   NewHealthHandler(),
	}

	return &routerFixture{
		router:    NewRouter(handlers, cfg),
		client:    client,
		employees: employees,
		issuer:    issuer,
	}
}

func (f *routerFixture) bearer(t *testing.T, s model.Session) map[string]string {
	t.Helper()
	token, _, err := f.issuer.IssueSession(s)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestNewRouter_InfrastructureRoutes(t *testing.T) {
	f := newRouterFixture(t, DefaultRouterConfig())

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "healthz", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readyz", path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "swagger", path: "/swagger/index.html", expectedStatus: http.StatusOK},
		{name: "unknown route", path: "/api/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(f.router, http.MethodGet, tt.path, "", nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestNewRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	f := newRouterFixture(t, cfg)

	w := performRequest(f.router, http.MethodGet, "/swagger/index.html", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := map[string]string{"Authorization": "Basic ZG9jczpzZWNyZXQ="}
	w = performRequest(f.router, http.MethodGet, "/swagger/index.html", "", req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t, DefaultRouterConfig())

	w := performRequest(f.router, http.MethodPost, "/api/weight/chargeable", `{"weight_kg": 2}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))

	w = performRequest(f.router, http.MethodGet, "/api/hsn?q=tea", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[{"code":"0902","description":"Tea, whether or not flavoured"}]}`, w.Body.String())
}

func TestNewRouter_SessionRoutes(t *testing.T) {
	f := newRouterFixture(t, DefaultRouterConfig())
	customer := f.bearer(t, model.Session{Email: "asha@example.com", Role: model.RoleCustomer, BackendToken: "bt-asha"})
	employee := f.bearer(t, model.Session{Email: "ravi@example.com", Role: model.RoleEmployee})

	f.client.On("ListShipments", mock.Anything, "asha@example.com").Return([]backend.ShipmentRecord{}, nil)
	f.employees.On("DayEndStats", mock.Anything).Return(backend.DayEndStats{"bookings": float64(3)}, nil)

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "shipments without token", path: "/api/shipments", expectedStatus: http.StatusUnauthorized},
		{name: "shipments with bad token", path: "/api/shipments", headers: map[string]string{"Authorization": "Bearer nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "shipments as customer", path: "/api/shipments", headers: customer, expectedStatus: http.StatusOK},
		{name: "session as customer", path: "/api/auth/session", headers: customer, expectedStatus: http.StatusOK},
		{name: "session without token", path: "/api/auth/session", expectedStatus: http.StatusUnauthorized},
		{name: "employee route as customer", path: "/api/employee/day-end-stats", headers: customer, expectedStatus: http.StatusForbidden},
		{name: "employee route as employee", path: "/api/employee/day-end-stats", headers: employee, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(f.router, http.MethodGet, tt.path, "", tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_ForwardsSessionToBackend(t *testing.T) {
	var gotAuth, gotRequestID, gotEmail string
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(backend.HeaderRequestID)
		gotEmail = r.URL.Query().Get("email")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer fake.Close()

	issuer := service.NewSessionIssuer(service.SessionConfig{Secret: "router-test-secret", SessionTTL: time.Hour})
	client := backend.New(fake.URL)
	handlers := Handlers{
		Shipment: NewShipmentHandler(service.NewShipmentService(client, service.NewWeightService(), nil, false), nil),
	}
	cfg := DefaultRouterConfig()
	cfg.SessionValidator = issuer
	router := NewRouter(handlers, cfg)

	token, _, err := issuer.IssueSession(model.Session{Email: "asha@example.com", BackendToken: "bt-asha"})
	require.NoError(t, err)

	w := performRequest(router, http.MethodGet, "/api/shipments", "", map[string]string{
		"Authorization":            "Bearer " + token,
		middleware.RequestIDHeader: "req-123",
	})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bearer bt-asha", gotAuth)
	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, "asha@example.com", gotEmail)
}

func TestNewRouter_WithoutSessionValidator(t *testing.T) {
	f := newRouterFixture(t, DefaultRouterConfig())
	handlers := Handlers{Shipment: NewShipmentHandler(service.NewShipmentService(f.client, service.NewWeightService(), nil, false), nil)}
	router := NewRouter(handlers, RouterConfig{})

	w := performRequest(router, http.MethodGet, "/api/shipments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	f.client.On("GetShipment", mock.Anything, "SHP1").Return(&backend.ShipmentRecord{ShipmentIDStr: "SHP1", Status: "booked"}, nil)
	w = performRequest(router, http.MethodGet, "/api/shipments/SHP1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_AuthRateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.AuthRateLimit = 2
	f := newRouterFixture(t, cfg)
	f.client.On("Login", mock.Anything, mock.Anything).
		Return(nil, &backend.Error{Endpoint: "login", Status: http.StatusUnauthorized, Message: "Invalid credentials"})

	body := `{"email": "asha@example.com", "password": "wrong-password"}`
	for i := 0; i < 2; i++ {
		w := performRequest(f.router, http.MethodPost, "/api/auth/login", body, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := performRequest(f.router, http.MethodPost, "/api/auth/login", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// Other routes keep their own budget.
	w = performRequest(f.router, http.MethodPost, "/api/weight/chargeable", `{}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_BookingIsIdempotent(t *testing.T) {
	f := newRouterFixture(t, DefaultRouterConfig())
	customer := f.bearer(t, model.Session{Email: "asha@example.com", Role: model.RoleCustomer})
	customer[middleware.IdempotencyKeyHeader] = "booking-1"

	f.client.On("CreateShipment", mock.Anything, model.ShipmentInternational, mock.Anything).
		Return(&backend.CreateShipmentResponse{ShipmentIDStr: "SHP123456", Status: "booked"}, nil).Once()

	first := performRequest(f.router, http.MethodPost, "/api/shipments/international", bookingBody, customer)
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := performRequest(f.router, http.MethodPost, "/api/shipments/international", bookingBody, customer)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "/api/shipments/SHP123456", second.Header().Get("Location"))

	f.client.AssertNumberOfCalls(t, "CreateShipment", 1)
}
