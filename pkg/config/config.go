package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the full service configuration, loaded from environment
// variables with development defaults.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string

	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// SalesLogPath is the append-only flat transaction log
	SalesLogPath string
	// ReceiptDir is where rendered receipt documents are written
	ReceiptDir string

	// KafkaBrokers is empty when event publishing is disabled
	KafkaBrokers []string

	RequestTimeout time.Duration
}

// Load reads the service configuration from the environment
func Load() *Config {
	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "pos-backend"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "posdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SalesLogPath: getEnv("SALES_LOG_PATH", "bill_history.csv"),
		ReceiptDir:   getEnv("RECEIPT_DIR", "receipts"),

		RequestTimeout: 30 * time.Second,
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
