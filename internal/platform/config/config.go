package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	App        AppConfig        `json:"app"`
	Cache      CacheConfig      `json:"cache"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	OrgName   string `json:"orgName"`
	WebDomain string `json:"webDomain"`

	// PageSize is the fixed page size served by every catalog listing.
	PageSize int `json:"pageSize"`

	// DiscoverSnapshotLimit bounds the number of rows fetched for the
	// shuffled discover feed.
	DiscoverSnapshotLimit int `json:"discoverSnapshotLimit"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Backend string        `json:"backend"`
	Prefix  string        `json:"prefix"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	Database int    `json:"database"`
	PoolSize int    `json:"poolSize"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Signup     RateLimitConfig `json:"signup"`
	Login      RateLimitConfig `json:"login"`
	Submission RateLimitConfig `json:"submission"`
	Feedback   RateLimitConfig `json:"feedback"`
}

// LoadFromEnv loads configuration from the environment.
// It follows a clear precedence:
// 1. Explicit Environment Variables (e.g., set in the shell or by CI)
// 2. Values from the .env file (if it exists)
// 3. Hardcoded defaults (if applicable)
func LoadFromEnv() (*Config, error) {
	// godotenv.Load() will read the .env file and load its values into the
	// environment for this process *only if they are not already set*.
	envPaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}

	if loadErr != nil {
		// Not an error: the .env file is optional.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/api"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:            getEnvAsInt("POSTGRES_PORT", 5432),
				Username:        getEnvOrDefault("POSTGRES_USERNAME", ""),
				Password:        getEnvOrDefault("POSTGRES_PASSWORD", ""),
				Database:        getEnvOrDefault("POSTGRES_DATABASE", "stablio"),
				SSLMode:         getEnvOrDefault("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  getEnvOrDefault("JWT_PUBLIC_KEY", ""),
			PrivateKey: getEnvOrDefault("JWT_PRIVATE_KEY", ""),
		},
		App: AppConfig{
			Name:                  getEnvOrDefault("APP_NAME", "Stablio"),
			OrgName:               getEnvOrDefault("ORG_NAME", "Stablio"),
			WebDomain:             getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			PageSize:              getEnvAsInt("CATALOG_PAGE_SIZE", 9),
			DiscoverSnapshotLimit: getEnvAsInt("DISCOVER_SNAPSHOT_LIMIT", 200),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			Backend: getEnvOrDefault("CACHE_BACKEND", "memory"),
			Prefix:  getEnvOrDefault("CACHE_PREFIX", "stablio:"),
			TTL:     getEnvAsDuration("CACHE_TTL", 1*time.Hour),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				Database: getEnvAsInt("REDIS_DATABASE", 0),
				PoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
			},
		},
		RateLimits: RateLimitsConfig{
			Signup: RateLimitConfig{
				Enabled:  getEnvAsBool("RATE_LIMIT_SIGNUP_ENABLED", true),
				Max:      getEnvAsInt("RATE_LIMIT_SIGNUP_MAX", 10),
				Duration: getEnvAsDuration("RATE_LIMIT_SIGNUP_DURATION", 1*time.Hour),
			},
			Login: RateLimitConfig{
				Enabled:  getEnvAsBool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      getEnvAsInt("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: getEnvAsDuration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Submission: RateLimitConfig{
				Enabled:  getEnvAsBool("RATE_LIMIT_SUBMISSION_ENABLED", true),
				Max:      getEnvAsInt("RATE_LIMIT_SUBMISSION_MAX", 20),
				Duration: getEnvAsDuration("RATE_LIMIT_SUBMISSION_DURATION", 1*time.Hour),
			},
			Feedback: RateLimitConfig{
				Enabled:  getEnvAsBool("RATE_LIMIT_FEEDBACK_ENABLED", true),
				Max:      getEnvAsInt("RATE_LIMIT_FEEDBACK_MAX", 10),
				Duration: getEnvAsDuration("RATE_LIMIT_FEEDBACK_DURATION", 1*time.Hour),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFromMap loads configuration from an in-memory map.
// This is the primary helper for testing configuration logic in isolation
// without manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	}

	getInt := func(key string, defaultValue int) int {
		if value, exists := envMap[key]; exists {
			if intValue, err := strconv.Atoi(value); err == nil {
				return intValue
			}
		}
		return defaultValue
	}

	getBool := func(key string, defaultValue bool) bool {
		if value, exists := envMap[key]; exists {
			if boolValue, err := strconv.ParseBool(value); err == nil {
				return boolValue
			}
		}
		return defaultValue
	}

	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if value, exists := envMap[key]; exists {
			if duration, err := time.ParseDuration(value); err == nil {
				return duration
			}
		}
		return defaultValue
	}

	jwtPrivateKey := get("JWT_PRIVATE_KEY", "")
	if jwtPrivateKey == "" {
		return nil, fmt.Errorf("required configuration JWT_PRIVATE_KEY is not set")
	}

	jwtPublicKey := get("JWT_PUBLIC_KEY", "")
	if jwtPublicKey == "" {
		return nil, fmt.Errorf("required configuration JWT_PUBLIC_KEY is not set")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      get("HOST", "localhost"),
			Port:      getInt("SERVER_PORT", 8080),
			BaseRoute: get("BASE_ROUTE", "/api"),
			WebDomain: get("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", ""),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "stablio"),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  jwtPublicKey,
			PrivateKey: jwtPrivateKey,
		},
		App: AppConfig{
			Name:                  get("APP_NAME", "Stablio"),
			OrgName:               get("ORG_NAME", "Stablio"),
			WebDomain:             get("WEB_DOMAIN", "http://localhost:3000"),
			PageSize:              getInt("CATALOG_PAGE_SIZE", 9),
			DiscoverSnapshotLimit: getInt("DISCOVER_SNAPSHOT_LIMIT", 200),
		},
		Cache: CacheConfig{
			Enabled: getBool("CACHE_ENABLED", true),
			Backend: get("CACHE_BACKEND", "memory"),
			Prefix:  get("CACHE_PREFIX", "stablio:"),
			TTL:     getDuration("CACHE_TTL", 1*time.Hour),
			Redis: RedisConfig{
				Address:  get("REDIS_ADDRESS", "localhost:6379"),
				Password: get("REDIS_PASSWORD", ""),
				Database: getInt("REDIS_DATABASE", 0),
				PoolSize: getInt("REDIS_POOL_SIZE", 10),
			},
		},
		RateLimits: RateLimitsConfig{
			Signup: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_SIGNUP_ENABLED", true),
				Max:      getInt("RATE_LIMIT_SIGNUP_MAX", 10),
				Duration: getDuration("RATE_LIMIT_SIGNUP_DURATION", 1*time.Hour),
			},
			Login: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_LOGIN_ENABLED", true),
				Max:      getInt("RATE_LIMIT_LOGIN_MAX", 5),
				Duration: getDuration("RATE_LIMIT_LOGIN_DURATION", 15*time.Minute),
			},
			Submission: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_SUBMISSION_ENABLED", true),
				Max:      getInt("RATE_LIMIT_SUBMISSION_MAX", 20),
				Duration: getDuration("RATE_LIMIT_SUBMISSION_DURATION", 1*time.Hour),
			},
			Feedback: RateLimitConfig{
				Enabled:  getBool("RATE_LIMIT_FEEDBACK_ENABLED", true),
				Max:      getInt("RATE_LIMIT_FEEDBACK_MAX", 10),
				Duration: getDuration("RATE_LIMIT_FEEDBACK_DURATION", 1*time.Hour),
			},
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration for required fields
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.JWT.PublicKey) == "" {
		errors = append(errors, "JWT_PUBLIC_KEY is required")
	}
	if strings.TrimSpace(c.JWT.PrivateKey) == "" {
		errors = append(errors, "JWT_PRIVATE_KEY is required")
	}

	if c.App.PageSize <= 0 {
		errors = append(errors, "CATALOG_PAGE_SIZE must be positive")
	}
	if c.App.DiscoverSnapshotLimit < c.App.PageSize {
		errors = append(errors, "DISCOVER_SNAPSHOT_LIMIT must be at least one page")
	}

	validBackends := []string{"memory", "redis"}
	if !contains(validBackends, c.Cache.Backend) {
		errors = append(errors, fmt.Sprintf("CACHE_BACKEND must be one of: %s", strings.Join(validBackends, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Helper functions
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
