package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Supabase backend
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string // outbound session for catalog fetch and AI match
	SupabaseJWTSecret  string // local token validation; remote GetUser when empty

	// Remote endpoints, relative to SupabaseURL
	CatalogPath string
	AIMatchPath string

	// Timeouts for outbound calls
	CatalogTimeout time.Duration
	AIMatchTimeout time.Duration

	// Local persistence
	CacheDBPath string

	// Optional matching-rules overlay file (YAML); empty disables the watcher
	RulesPath string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool

	// Tracing
	EnableTracing bool
	OTLPEndpoint  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseJWTSecret:  getEnv("SUPABASE_JWT_SECRET", ""),

		CatalogPath: getEnv("CATALOG_PATH", "/rest/v1/novenas?select=slug,title,category"),
		AIMatchPath: getEnv("AI_MATCH_PATH", "/functions/v1/match-intention"),

		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT_MS", 5000),
		AIMatchTimeout: getEnvDuration("AI_MATCH_TIMEOUT_MS", 15000),

		CacheDBPath: getEnv("CACHE_DB_PATH", "novena-cache.db"),
		RulesPath:   getEnv("MATCHING_RULES_PATH", ""),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required in production")
		}
		if c.SupabaseJWTSecret == "" && c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_JWT_SECRET or SUPABASE_ANON_KEY is required in production")
		}
	}
	return nil
}

// RemoteConfigured reports whether the Supabase backend is configured at all.
// Its absence is not an error: the remote tiers are simply skipped.
func (c *Config) RemoteConfigured() bool {
	return c.SupabaseURL != ""
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvDuration reads a millisecond count with a default value
func getEnvDuration(key string, defaultMillis int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defaultMillis) * time.Millisecond
}
