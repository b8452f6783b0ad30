package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIPort  string
	LogLevel string
	Trims    SourceConfig
	Registry SourceConfig
}

// SourceConfig configures one outbound live data source.
type SourceConfig struct {
	Enabled           bool
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

func Load() *Config {
	return &Config{
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Trims: SourceConfig{
			Enabled:           getEnvBool("TRIMS_SOURCE_ENABLED", true),
			BaseURL:           getEnv("TRIMS_SOURCE_URL", "https://www.carqueryapi.com/api/0.3"),
			Timeout:           getEnvDuration("TRIMS_SOURCE_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getEnvFloat("TRIMS_SOURCE_RPS", 2.0),
		},
		Registry: SourceConfig{
			Enabled:           getEnvBool("REGISTRY_SOURCE_ENABLED", true),
			BaseURL:           getEnv("REGISTRY_SOURCE_URL", "https://vpic.nhtsa.dot.gov/api"),
			Timeout:           getEnvDuration("REGISTRY_SOURCE_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getEnvFloat("REGISTRY_SOURCE_RPS", 5.0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
