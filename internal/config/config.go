// Package config provides configuration loading and management for the application.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// HTTP server port
	Port string

	// Base URLs of the backend services. An empty registry URL selects the
	// built-in static registry; an empty wallet URL leaves the wallet absent.
	RegistryURL string
	WalletURL   string

	// OpenTelemetry endpoint for observability
	OtelEndpoint string

	// API keys for the backends, keyed by "registry" / "wallet"
	APIKeys map[string]string

	// Query settings
	RequestTimeout   time.Duration
	RegistryCacheTTL time.Duration
	ReferenceSymbol  string

	// Backend circuit breaker
	BreakerFailureThreshold int
	CircuitResetDelay       time.Duration

	// Rate limiting for the HTTP API
	RateLimitRPS   float64
	RateLimitBurst int

	// Logging
	LogLevel  string
	LogFormat string

	EnableMetrics bool
}

// Load creates a new Config from environment variables
func Load() Config {
	apiKeys := map[string]string{}
	if raw := os.Getenv("API_KEYS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &apiKeys); err != nil {
			logrus.Warnf("Ignoring malformed API_KEYS: %v", err)
		}
	}

	return Config{
		Port:                    GetEnvOrDefault("PORT", "8080"),
		RegistryURL:             strings.TrimRight(GetEnvOrDefault("REGISTRY_URL", ""), "/"),
		WalletURL:               strings.TrimRight(GetEnvOrDefault("WALLET_URL", ""), "/"),
		OtelEndpoint:            GetEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		APIKeys:                 apiKeys,
		RequestTimeout:          GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		RegistryCacheTTL:        GetEnvAsDuration("REGISTRY_CACHE_TTL", 10*time.Minute),
		ReferenceSymbol:         strings.ToUpper(GetEnvOrDefault("BUY_REFERENCE_SYMBOL", "BAT")),
		BreakerFailureThreshold: GetEnvAsInt("BREAKER_FAILURE_THRESHOLD", 5),
		CircuitResetDelay:       GetEnvAsDuration("CIRCUIT_RESET_DELAY", 30*time.Second),
		RateLimitRPS:            GetEnvAsFloat("RATE_LIMIT_RPS", 20.0),
		RateLimitBurst:          GetEnvAsInt("RATE_LIMIT_BURST", 40),
		LogLevel:                strings.ToLower(GetEnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:               strings.ToLower(GetEnvOrDefault("LOG_FORMAT", "text")),
		EnableMetrics:           GetEnvAsBool("ENABLE_METRICS", true),
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already set in the environment.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
		return
	}
	logrus.Debug("Loaded environment from .env")
}

// APIKey returns the API key configured for a backend, or ""
func (c Config) APIKey(backend string) string {
	return c.APIKeys[backend]
}

// GetEnv retrieves an environment variable and whether it exists
func GetEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	return value, exists
}

// GetEnvOrDefault retrieves an environment variable or returns the default value if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value, exists := GetEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer with a default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := GetEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		logrus.Warnf("Invalid integer in %s, using default: %v", key, defaultValue)
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float with a default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := GetEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
		logrus.Warnf("Invalid float in %s, using default: %v", key, defaultValue)
	}
	return defaultValue
}

// GetEnvAsDuration retrieves an environment variable as a duration with a default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := GetEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		logrus.Warnf("Invalid duration in %s, using default: %v", key, defaultValue)
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean with a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := GetEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
		logrus.Warnf("Invalid boolean in %s, using default: %v", key, defaultValue)
	}
	return defaultValue
}
