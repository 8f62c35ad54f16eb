// Package config provides configuration management for the courier portal.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	HSN      HSNConfig
	Quotes   QuoteConfig
	Session  SessionConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	AuthRateLimit  int
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// BackendConfig holds settings for the remote logistics API.
type BackendConfig struct {
	BaseURL                        string
	Timeout                        time.Duration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// HSNConfig holds settings for the HSN code dataset.
type HSNConfig struct {
	DataPath string
	// Preload builds the index at startup instead of on the first search.
	Preload bool
	// ValidateBookings rejects bookings whose goods carry an unknown HSN code.
	ValidateBookings bool
}

// QuoteConfig holds price quote cache settings.
type QuoteConfig struct {
	CacheSize  int
	CacheTTL   time.Duration
	OptionsTTL time.Duration
}

// SessionConfig holds settings for login flow and session tokens.
type SessionConfig struct {
	Secret            string
	SessionTTL        time.Duration
	FlowTTL           time.Duration
	OTPResendCooldown time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from defaults, an optional config file named by
// CONFIG_FILE, and environment variables (highest precedence).
func Load() Config {
	v := newViper()

	return Config{
		Server: ServerConfig{
			Port:           getString(v, "PORT"),
			RateLimit:      getInt(v, "RATE_LIMIT"),
			RateWindow:     getDuration(v, "RATE_WINDOW"),
			AuthRateLimit:  getInt(v, "AUTH_RATE_LIMIT"),
			RequestTimeout: getDuration(v, "REQUEST_TIMEOUT"),
			CORSOrigins:    parseCORSOrigins(v.GetString("CORS_ORIGINS")),
			SwaggerUser:    getString(v, "SWAGGER_USER"),
			SwaggerPass:    getString(v, "SWAGGER_PASS"),
		},
		Backend: BackendConfig{
			BaseURL:                        strings.TrimRight(getString(v, "BACKEND_BASE_URL"), "/"),
			Timeout:                        getDuration(v, "BACKEND_TIMEOUT"),
			CircuitBreakerFailureThreshold: getInt(v, "BACKEND_CIRCUIT_FAILURE_THRESHOLD"),
			CircuitBreakerSuccessThreshold: getInt(v, "BACKEND_CIRCUIT_SUCCESS_THRESHOLD"),
			CircuitBreakerTimeout:          getDuration(v, "BACKEND_CIRCUIT_TIMEOUT"),
		},
		HSN: HSNConfig{
			DataPath:         getString(v, "HSN_DATA_PATH"),
			Preload:          getBool(v, "HSN_PRELOAD"),
			ValidateBookings: getBool(v, "HSN_VALIDATE_BOOKINGS"),
		},
		Quotes: QuoteConfig{
			CacheSize:  getInt(v, "QUOTE_CACHE_SIZE"),
			CacheTTL:   getDuration(v, "QUOTE_CACHE_TTL"),
			OptionsTTL: getDuration(v, "QUOTE_OPTIONS_TTL"),
		},
		Session: SessionConfig{
			Secret:            getString(v, "SESSION_SECRET"),
			SessionTTL:        getDuration(v, "SESSION_TTL"),
			FlowTTL:           getDuration(v, "FLOW_TTL"),
			OTPResendCooldown: getDuration(v, "OTP_RESEND_COOLDOWN"),
		},
		Database: DatabaseConfig{
			URI:                            getString(v, "MONGODB_URI"),
			DatabaseName:                   getString(v, "MONGODB_DATABASE"),
			LogsTTL:                        getDuration(v, "MONGODB_LOGS_TTL"),
			Enabled:                        getBool(v, "MONGODB_ENABLED"),
			CircuitBreakerFailureThreshold: getInt(v, "CIRCUIT_BREAKER_FAILURE_THRESHOLD"),
			CircuitBreakerSuccessThreshold: getInt(v, "CIRCUIT_BREAKER_SUCCESS_THRESHOLD"),
			CircuitBreakerTimeout:          getDuration(v, "CIRCUIT_BREAKER_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  getString(v, "LOG_LEVEL"),
			Pretty: getBool(v, "LOG_PRETTY"),
		},
	}
}

// defaults maps every key to its fallback. Values are strings so that an
// unparsable override can fall back to the same representation.
// SESSION_SECRET has no fallback; startup fails without one.
var defaults = map[string]string{
	"PORT":                              "8080",
	"RATE_LIMIT":                        "100",
	"RATE_WINDOW":                       "1m",
	"AUTH_RATE_LIMIT":                   "10",
	"REQUEST_TIMEOUT":                   "30s",
	"SWAGGER_USER":                      "",
	"SWAGGER_PASS":                      "",
	"BACKEND_BASE_URL":                  "http://localhost:5000",
	"BACKEND_TIMEOUT":                   "10s",
	"BACKEND_CIRCUIT_FAILURE_THRESHOLD": "5",
	"BACKEND_CIRCUIT_SUCCESS_THRESHOLD": "2",
	"BACKEND_CIRCUIT_TIMEOUT":           "30s",
	"HSN_DATA_PATH":                     "data/hsn_codes.json",
	"HSN_PRELOAD":                       "true",
	"HSN_VALIDATE_BOOKINGS":             "true",
	"QUOTE_CACHE_SIZE":                  "1000",
	"QUOTE_CACHE_TTL":                   "5m",
	"QUOTE_OPTIONS_TTL":                 "15m",
	"SESSION_SECRET":                    "",
	"SESSION_TTL":                       "24h",
	"FLOW_TTL":                          "10m",
	"OTP_RESEND_COOLDOWN":               "30s",
	"MONGODB_URI":                       "mongodb://localhost:27017",
	"MONGODB_DATABASE":                  "courier_portal",
	"MONGODB_LOGS_TTL":                  "720h",
	"MONGODB_ENABLED":                   "false",
	"CIRCUIT_BREAKER_FAILURE_THRESHOLD": "5",
	"CIRCUIT_BREAKER_SUCCESS_THRESHOLD": "2",
	"CIRCUIT_BREAKER_TIMEOUT":           "30s",
	"LOG_LEVEL":                         "info",
	"LOG_PRETTY":                        "false",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to read config file - using environment and defaults")
		}
	}

	return v
}

func getString(v *viper.Viper, key string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return defaults[key]
}

func getInt(v *viper.Viper, key string) int {
	if i, err := strconv.Atoi(getString(v, key)); err == nil {
		return i
	}
	i, _ := strconv.Atoi(defaults[key])
	return i
}

func getBool(v *viper.Viper, key string) bool {
	if b, err := strconv.ParseBool(getString(v, key)); err == nil {
		return b
	}
	b, _ := strconv.ParseBool(defaults[key])
	return b
}

func getDuration(v *viper.Viper, key string) time.Duration {
	if d, err := time.ParseDuration(getString(v, key)); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaults[key])
	return d
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
