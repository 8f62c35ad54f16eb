//go:build !integration

package app

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/circuitbreaker"
	"github.com/guttosm/courier-portal/internal/domain/model"
	"github.com/guttosm/courier-portal/internal/http"
	"github.com/guttosm/courier-portal/internal/middleware"
)

type discardRecorder struct{}

func (discardRecorder) Log(*model.LogEntry) {}

func TestInitializeRouter(t *testing.T) {
	services, err := InitializeServices(testConfig(writeDataset(t)), nil)
	require.NoError(t, err)
	t.Cleanup(services.Stop)

	tests := []struct {
		name         string
		cfg          config.ServerConfig
		dbComponents *DatabaseComponents
		recorder     middleware.ActivityRecorder
		validate     func(*testing.T, *RouterComponents)
	}{
		{
			name: "server settings override defaults",
			cfg: config.ServerConfig{
				RateLimit:      50,
				RateWindow:     30 * time.Second,
				AuthRateLimit:  3,
				RequestTimeout: 5 * time.Second,
				CORSOrigins:    []string{"https://portal.example.com"},
				SwaggerUser:    "docs",
				SwaggerPass:    "secret",
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, 50, components.Config.RateLimit)
				assert.Equal(t, 30*time.Second, components.Config.RateWindow)
				assert.Equal(t, 3, components.Config.AuthRateLimit)
				assert.Equal(t, 5*time.Second, components.Config.RequestTimeout)
				assert.Equal(t, []string{"https://portal.example.com"}, components.Config.CORSOrigins)
				assert.Equal(t, "docs", components.Config.SwaggerUser)
				assert.Equal(t, "secret", components.Config.SwaggerPass)
				assert.True(t, components.Config.EnableIdempotency)
			},
		},
		{
			name: "zero settings keep defaults",
			validate: func(t *testing.T, components *RouterComponents) {
				defaults := http.DefaultRouterConfig()
				assert.Equal(t, defaults.RateLimit, components.Config.RateLimit)
				assert.Equal(t, defaults.RateWindow, components.Config.RateWindow)
				assert.Equal(t, defaults.AuthRateLimit, components.Config.AuthRateLimit)
				assert.Equal(t, defaults.RequestTimeout, components.Config.RequestTimeout)
				assert.Nil(t, components.Config.Recorder)
			},
		},
		{
			name:     "recorder is passed through",
			recorder: discardRecorder{},
			dbComponents: &DatabaseComponents{
				LogsCircuitBreaker: circuitbreaker.New(circuitbreaker.DefaultConfig()),
			},
			validate: func(t *testing.T, components *RouterComponents) {
				assert.Equal(t, discardRecorder{}, components.Config.Recorder)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeRouter(services, tt.dbComponents, tt.recorder, config.Config{Server: tt.cfg})

			require.NotNil(t, components)
			assert.NotNil(t, components.Handlers.Weight)
			assert.NotNil(t, components.Handlers.HSN)
			assert.NotNil(t, components.Handlers.Quote)
			assert.NotNil(t, components.Handlers.Shipment)
			assert.NotNil(t, components.Handlers.Auth)
			assert.NotNil(t, components.Handlers.Employee)
			assert.NotNil(t, components.Handlers.Health)
			assert.Equal(t, services.Sessions, components.Config.SessionValidator)
			tt.validate(t, components)
		})
	}
}

func TestInitializeRouter_ReadinessChecks(t *testing.T) {
	services, err := InitializeServices(testConfig(writeDataset(t)), nil)
	require.NoError(t, err)
	t.Cleanup(services.Stop)

	components := InitializeRouter(services, nil, nil, config.Config{})
	router := http.NewRouter(components.Handlers, components.Config)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))
	require.Equal(t, 200, w.Code, w.Body.String())

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Contains(t, body.Checks, "hsn_index")
	assert.Contains(t, body.Checks, "backend_circuit")
	assert.NotContains(t, body.Checks, "mongodb")
}
