package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Search   SearchConfig
}

// ServerConfig holds HTTP facade configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// UpstreamConfig holds query service connection configuration. The service
// endpoint is always injected from here, never hard-coded at a call site.
type UpstreamConfig struct {
	BaseURL string
	Timeout int // seconds
}

// SearchConfig holds search orchestration configuration
type SearchConfig struct {
	DefaultLimit int
	MaxLimit     int
	InitialQuery string // pre-filled query submitted once at startup, if set
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000"),
			Timeout: getEnvAsInt("UPSTREAM_TIMEOUT", 60),
		},
		Search: SearchConfig{
			DefaultLimit: getEnvAsInt("SEARCH_DEFAULT_LIMIT", 5),
			MaxLimit:     getEnvAsInt("SEARCH_MAX_LIMIT", 50),
			InitialQuery: getEnv("SEARCH_INITIAL_QUERY", ""),
		},
	}

	if cfg.Search.DefaultLimit <= 0 {
		return nil, fmt.Errorf("SEARCH_DEFAULT_LIMIT must be positive, got %d", cfg.Search.DefaultLimit)
	}
	if cfg.Search.MaxLimit < cfg.Search.DefaultLimit {
		return nil, fmt.Errorf("SEARCH_MAX_LIMIT (%d) must be at least SEARCH_DEFAULT_LIMIT (%d)",
			cfg.Search.MaxLimit, cfg.Search.DefaultLimit)
	}

	return cfg, nil
}

// UpstreamTimeout returns the query service timeout as a duration
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.Upstream.Timeout) * time.Second
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
