package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/guttosm/courier-portal/config"
)

const testDataset = `{
  "09": {
    "code": "09",
    "description": "Coffee, tea, mate and spices",
    "children": {
      "0902": {"code": "0902", "description": "Tea, whether or not flavoured", "children": {}}
    }
  }
}`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hsn_codes.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))
	return path
}

func testConfig(dataPath string) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			AuthRateLimit:  10,
			RequestTimeout: 5 * time.Second,
		},
		Backend: config.BackendConfig{
			BaseURL: "http://127.0.0.1:1",
			Timeout: time.Second,
		},
		HSN: config.HSNConfig{
			DataPath:         dataPath,
			ValidateBookings: true,
		},
		Quotes: config.QuoteConfig{
			CacheSize:  10,
			CacheTTL:   time.Minute,
			OptionsTTL: time.Minute,
		},
		Session: config.SessionConfig{
			Secret:            "app-test-secret",
			SessionTTL:        time.Hour,
			FlowTTL:           10 * time.Minute,
			OTPResendCooldown: 30 * time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}
