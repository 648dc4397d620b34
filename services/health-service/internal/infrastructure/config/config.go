package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hieple7985/venture-guard-ai/pkg/kafka"
)

// Config holds all configuration for the health service.
type Config struct {
	GRPCPort       string
	HTTPPort       string
	KafkaBrokers   []string
	KafkaTopic     string
	KafkaSASLUser  string
	KafkaSASLPass  string
	KafkaSASLMech  string
	KafkaTLS       bool
	Environment    string
	LogLevel       string
	LogFormat      string
	JWTSecret      string
	JWTIssuer      string
	OTLPEndpoint   string
	OTLPInsecure   bool
	GRPCReflection bool
	TLSCertFile    string
	TLSKeyFile     string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		GRPCPort:       getEnv("GRPC_PORT", "9091"),
		HTTPPort:       getEnv("HTTP_PORT", "9191"),
		KafkaBrokers:   kafka.ParseBrokers(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "health.events"),
		KafkaSASLUser:  getEnv("KAFKA_SASL_USERNAME", ""),
		KafkaSASLPass:  getEnv("KAFKA_SASL_PASSWORD", ""),
		KafkaSASLMech:  getEnv("KAFKA_SASL_MECHANISM", "PLAIN"),
		KafkaTLS:       getEnvBool("KAFKA_TLS", false),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", "ventureguard-gateway"),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPInsecure:   getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", false),
		TLSCertFile:    getEnv("GRPC_TLS_CERT_FILE", ""),
		TLSKeyFile:     getEnv("GRPC_TLS_KEY_FILE", ""),
	}
}

// GRPCAddress returns the full gRPC listen address.
func (c *Config) GRPCAddress() string {
	return fmt.Sprintf(":%s", c.GRPCPort)
}

// HTTPAddress returns the full HTTP listen address.
func (c *Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.HTTPPort)
}

// Kafka returns the producer configuration derived from the environment.
func (c *Config) Kafka() kafka.Config {
	return kafka.Config{
		Brokers:       c.KafkaBrokers,
		SASLEnabled:   c.KafkaSASLUser != "",
		SASLMechanism: c.KafkaSASLMech,
		SASLUsername:  c.KafkaSASLUser,
		SASLPassword:  c.KafkaSASLPass,
		TLS:           c.KafkaTLS,
	}
}

// AuthEnabled reports whether gRPC callers must present a JWT.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// TLSEnabled reports whether the gRPC listener serves TLS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
