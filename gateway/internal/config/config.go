package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the API gateway.
type Config struct {
	HTTPPort     int
	HealthAddr   string
	HealthCAFile string
	JWTSecret    string
	JWTIssuer    string
	RateLimit    int // requests per second, per client
	CORSOrigins  []string
	APIVersion   string
	Version      string
	Environment  string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		HTTPPort:     getEnvInt("HTTP_PORT", 8000),
		HealthAddr:   getEnv("HEALTH_ADDR", "localhost:9091"),
		HealthCAFile: getEnv("HEALTH_TLS_CA_FILE", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTIssuer:    getEnv("JWT_ISSUER", "ventureguard-gateway"),
		RateLimit:    getEnvInt("RATE_LIMIT", 100),
		CORSOrigins:  getEnvList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		APIVersion:   getEnv("API_VERSION", "v1"),
		Version:      getEnv("APP_VERSION", "1.0.0"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}
}

// Validate reports configuration the gateway cannot start with.
func (c Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.HTTPPort)
	}
	if c.HealthAddr == "" {
		return fmt.Errorf("HEALTH_ADDR is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.APIVersion == "" {
		return fmt.Errorf("API_VERSION is required")
	}
	return nil
}

// AuthEnabled reports whether API routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// APIPrefix is the path prefix of versioned API routes, e.g. "/api/v1".
func (c Config) APIPrefix() string {
	return "/api/" + c.APIVersion
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvList splits a comma separated environment variable, dropping blanks.
func getEnvList(key string, defaultVal []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
