//go:build !integration

package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/config"
	"github.com/guttosm/courier-portal/internal/circuitbreaker"
	"github.com/guttosm/courier-portal/internal/hsn"
)

func TestInitializeServices(t *testing.T) {
	dataPath := writeDataset(t)

	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantErr    error
		wantAnyErr bool
		validate   func(*testing.T, *ServiceComponents)
	}{
		{
			name:   "lazy index is not built at startup",
			mutate: func(*config.Config) {},
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.Equal(t, hsn.StateUnbuilt, s.HSNProvider.State())
			},
		},
		{
			name:   "preload builds the index",
			mutate: func(c *config.Config) { c.HSN.Preload = true },
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.Equal(t, hsn.StateBuilt, s.HSNProvider.State())
				entries, err := s.HSN.Search("flavoured")
				require.NoError(t, err)
				assert.Len(t, entries, 1)
			},
		},
		{
			name: "caches disabled",
			mutate: func(c *config.Config) {
				c.Quotes = config.QuoteConfig{}
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				assert.NotNil(t, s.Quotes)
			},
		},
		{
			name: "backend breaker uses configured thresholds",
			mutate: func(c *config.Config) {
				c.Backend.CircuitBreakerFailureThreshold = 3
				c.Backend.CircuitBreakerSuccessThreshold = 1
			},
			validate: func(t *testing.T, s *ServiceComponents) {
				require.NotNil(t, s.BackendCircuitBreaker)
				assert.Equal(t, circuitbreaker.StateClosed, s.BackendCircuitBreaker.State())
			},
		},
		{
			name:    "missing session secret",
			mutate:  func(c *config.Config) { c.Session.Secret = "" },
			wantErr: ErrMissingSessionSecret,
		},
		{
			name: "preload with missing dataset",
			mutate: func(c *config.Config) {
				c.HSN.Preload = true
				c.HSN.DataPath = filepath.Join(t.TempDir(), "missing.json")
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(dataPath)
			tt.mutate(&cfg)

			components, err := InitializeServices(cfg, nil)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, components)
				return
			case tt.wantAnyErr:
				assert.Error(t, err)
				assert.Nil(t, components)
				return
			}

			require.NoError(t, err)
			defer components.Stop()

			assert.NotNil(t, components.Backend)
			assert.NotNil(t, components.Sessions)
			assert.NotNil(t, components.Weights)
			assert.NotNil(t, components.Shipments)
			assert.NotNil(t, components.Auth)
			assert.NotNil(t, components.Employees)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeServices_SessionSecretFromEnvironment(t *testing.T) {
	dataPath := writeDataset(t)

	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "unset secret", secret: "", wantErr: ErrMissingSessionSecret},
		{name: "blank secret", secret: "  ", wantErr: ErrMissingSessionSecret},
		{name: "configured secret", secret: "env-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_SECRET", tt.secret)
			t.Setenv("HSN_DATA_PATH", dataPath)
			t.Setenv("LOG_LEVEL", "error")

			components, err := InitializeServices(config.Load(), nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, components)
				return
			}
			require.NoError(t, err)
			defer components.Stop()
			assert.Equal(t, hsn.StateBuilt, components.HSNProvider.State())
		})
	}
}

func TestServiceComponents_StopNil(t *testing.T) {
	var components *ServiceComponents
	assert.NotPanics(t, components.Stop)
}
