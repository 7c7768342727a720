package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Export ExportConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	BodyLimit       int
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// EngineConfig holds the extraction engine's bounds and windows
type EngineConfig struct {
	MinPrice           float64
	StrictMaxPrice     float64
	AggressiveMaxPrice float64
	MaxQuantity        int
	StoreLookahead     int
	TotalTailLines     int
	MinTextLength      int
	CatalogPath        string
}

// ExportConfig holds XLSX export configuration
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			BodyLimit:       getEnvAsInt("HTTP_BODY_LIMIT", 1<<20),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Engine: EngineConfig{
			MinPrice:           getEnvAsFloat64("ENGINE_MIN_PRICE", 0.1),
			StrictMaxPrice:     getEnvAsFloat64("ENGINE_STRICT_MAX_PRICE", 500),
			AggressiveMaxPrice: getEnvAsFloat64("ENGINE_AGGRESSIVE_MAX_PRICE", 2000),
			MaxQuantity:        getEnvAsInt("ENGINE_MAX_QUANTITY", 20),
			StoreLookahead:     getEnvAsInt("ENGINE_STORE_LOOKAHEAD", 8),
			TotalTailLines:     getEnvAsInt("ENGINE_TOTAL_TAIL_LINES", 15),
			MinTextLength:      getEnvAsInt("ENGINE_MIN_TEXT_LENGTH", 15),
			CatalogPath:        getEnv("ENGINE_CATALOG_PATH", ""),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Receipt"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Engine.MinPrice <= 0 {
		return NewAppError("CONFIG_ERROR", "ENGINE_MIN_PRICE must be positive", ErrInvalidInput)
	}
	if c.Engine.StrictMaxPrice <= c.Engine.MinPrice {
		return NewAppError("CONFIG_ERROR", "ENGINE_STRICT_MAX_PRICE must exceed ENGINE_MIN_PRICE", ErrInvalidInput)
	}
	if c.Engine.AggressiveMaxPrice < c.Engine.StrictMaxPrice {
		return NewAppError("CONFIG_ERROR", "ENGINE_AGGRESSIVE_MAX_PRICE must be at least ENGINE_STRICT_MAX_PRICE", ErrInvalidInput)
	}
	return nil
}
